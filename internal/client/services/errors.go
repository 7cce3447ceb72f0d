package services

import "errors"

var (
	ErrNotAuthenticated = errors.New("please log in to continue")
	ErrForbidden        = errors.New("you do not have access to this page")
)

// ValidationError is a form error detected locally. It is always returned
// before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
