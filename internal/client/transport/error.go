package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pliablepixels/zmng/internal/common"
)

// Error is the single normalized failure shape. Status 0 means the backend
// call itself failed before any HTTP status existed (network error,
// cancellation, bridge failure).
type Error struct {
	Message string
	Status  int
	Data    any
	Headers map[string]string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport: %s", e.Message)
	}
	return fmt.Sprintf("transport: %s (status %d)", e.Message, e.Status)
}

// Is lets errors.Is(err, common.ErrUnauthorized) match 401 transport errors.
func (e *Error) Is(target error) bool {
	return target == common.ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Unauthorized reports whether the error carries HTTP status 401.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AsError unwraps err into a *Error when possible.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// newDispatchError wraps a raw backend failure (no HTTP status known).
func newDispatchError(err error) *Error {
	return &Error{Message: err.Error(), Status: 0}
}

// NewStatusError builds the error for a normalized response whose status
// indicates failure.
func NewStatusError(resp *Response) *Error {
	return &Error{
		Message: fmt.Sprintf("request failed: %s", resp.StatusText),
		Status:  resp.Status,
		Data:    resp.Data,
		Headers: resp.Headers,
	}
}
