package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest        = errors.New("bad request")
	ErrNotFound          = errors.New("not found")
	ErrServerUnavailable = errors.New("configuration server unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected response status")
)

// ResponseError is a non-2xx answer of the configuration service.
type ResponseError struct {
	StatusCode int
	Message    string

	// MissingParameters is set when the server could not render a document
	// because its parameter document is incomplete.
	MissingParameters []string
}

func (e *ResponseError) Error() string {
	msg := fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	if len(e.MissingParameters) > 0 {
		msg += " [" + strings.Join(e.MissingParameters, ", ") + "]"
	}
	return msg
}

func (e *ResponseError) Unwrap() error {
	switch {
	case e.StatusCode == 400:
		return ErrBadRequest
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServerUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
