package provider

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a backend failure.
type ErrorCode string

const (
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeNetwork        ErrorCode = "network_error"
)

// Error wraps a backend failure with a stable classification. Failures are
// never retried here; the code exists so callers can report something more
// useful than the SDK's raw message.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// CodeOf returns the classification of err, or ErrorCodeNetwork when err is
// not a provider Error.
func CodeOf(err error) ErrorCode {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrorCodeNetwork
}
