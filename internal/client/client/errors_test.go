package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestError_Is(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusUnauthorized, true},
		{http.StatusForbidden, true},
		{http.StatusBadRequest, false},
		{http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &RequestError{Status: tt.status, Message: "m"})
			assert.Equal(t, tt.want, IsUnauthorized(err))
			assert.False(t, errors.Is(err, ErrUnavailable))
		})
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	err := &NetworkError{Err: io.ErrUnexpectedEOF}
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "server unavailable")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "boom", Message(&RequestError{Status: 400, Message: "boom"}))
	assert.Equal(t, FallbackMessage, Message(&RequestError{Status: 400}))
	assert.Equal(t, FallbackMessage, Message(errors.New("anything")))
	assert.Equal(t, FallbackMessage, Message(nil))
}
