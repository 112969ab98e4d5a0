package client

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken  = errors.New("abacatepay api token is not configured")
	ErrRequestFailed = errors.New("abacatepay request failed")
)

// APIError is returned when the API answers with an error status or an error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status=%d message=%s", ErrRequestFailed.Error(), e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}
