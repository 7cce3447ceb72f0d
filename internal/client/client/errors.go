package client

import (
	"errors"
	"fmt"
	"net/http"
)

// FallbackMessage is used when a failed response carries no message.
const FallbackMessage = "API request failed"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// RequestError is returned when the server answered but rejected the call:
// either with a non-2xx status or with a success:false envelope.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Is makes 401 and 403 responses match ErrUnauthorized.
func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// NetworkError is returned when no response was received at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", ErrUnavailable, e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrUnavailable, e.Err}
}

// IsUnauthorized reports whether err is a 401 or 403 rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// Message returns the text to show for a failed call: the server message for
// rejections and FallbackMessage for anything else.
func Message(err error) string {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message
	}
	return FallbackMessage
}
