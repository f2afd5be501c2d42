package fees

import (
	"strconv"
	"strings"
)

// FormatAmount renders a currency figure with thousands separators and the
// requested number of decimals. Whole-lek totals use 0 decimals, converted
// amounts use 2. Identical numeric input always yields identical output.
func FormatAmount(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatLek is shorthand for whole-lek amounts.
func FormatLek(v int64) string {
	return FormatAmount(float64(v), 0)
}

// FormatRate renders an exchange rate to the full 8 stored decimals.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 8, 64)
}
