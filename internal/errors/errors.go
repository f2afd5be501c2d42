package errors

// DomainError carries a stable machine-readable code across service boundaries.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
