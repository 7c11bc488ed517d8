package usersapi

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse reports a list response without an items field.
var ErrMalformedResponse = errors.New("malformed users response")

// StatusError reports a non-2xx answer from the users API.
type StatusError struct {
	Operation  string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Detail)
}
