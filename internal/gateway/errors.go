package gateway

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated means no usable bearer token was available, or the
// server rejected the one we sent. Callers surface it as a redirect-to-login
// signal rather than an inline message.
var ErrNotAuthenticated = errors.New("not authenticated")

// NetworkError wraps a transport-level failure (DNS, connect, timeout). The
// request may or may not have reached the server.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Message is extracted from the JSON body
// when present, otherwise it falls back to the HTTP status line.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}
