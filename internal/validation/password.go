package validation

import "strings"

const specialChars = "!@#$%^&*()-_=+[]{};:'\",.<>/?`~\\|"

// HasSpecialChar reports whether the password contains at least one special
// character.
func HasSpecialChar(password string) bool {
	return strings.ContainsAny(password, specialChars)
}
