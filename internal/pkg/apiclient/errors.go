package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrTransport = errors.New("booking api unreachable")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("booking api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("booking api: status %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports a 4xx response: the request itself was refused.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Temporary reports a failure that may succeed on a later manual retry.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests || e.StatusCode == http.StatusRequestTimeout
}
