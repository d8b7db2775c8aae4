package contract

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the user-facing category of a failed query.
type ErrorKind int

// Error categories. Every other status code collapses into GenericError.
const (
	GenericError ErrorKind = iota
	NotFoundError
	RateLimitError
)

// Fixed messages shown for each error category.
const (
	NotFoundMessage  = "User not found"
	RateLimitMessage = "Rate limit exceeded. Please try again later."
	GenericMessage   = "Something went wrong. Please try again."
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case NotFoundError:
		return "not_found"
	case RateLimitError:
		return "rate_limited"
	default:
		return "generic"
	}
}

// QueryError is returned when any of the upstream fetches fails.
type QueryError struct {
	Kind   ErrorKind
	Status int // upstream HTTP status, 0 when no response was received
	Err    error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Message returns the fixed user-facing text for the error category.
func (e *QueryError) Message() string {
	return e.Kind.Message()
}

// Message returns the fixed user-facing text for the category.
func (k ErrorKind) Message() string {
	switch k {
	case NotFoundError:
		return NotFoundMessage
	case RateLimitError:
		return RateLimitMessage
	default:
		return GenericMessage
	}
}

// ClassifyStatus maps an upstream status code to an error category.
// The API answers 403 when the unauthenticated quota is spent; 429 is the secondary limit.
func ClassifyStatus(status int) ErrorKind {
	switch status {
	case http.StatusNotFound:
		return NotFoundError
	case http.StatusForbidden, http.StatusTooManyRequests:
		return RateLimitError
	default:
		return GenericError
	}
}

// NewStatusError builds a QueryError from an upstream status code.
func NewStatusError(status int, err error) *QueryError {
	return &QueryError{Kind: ClassifyStatus(status), Status: status, Err: err}
}

// AsQueryError converts any error into a QueryError, treating unknown errors as generic.
func AsQueryError(err error) *QueryError {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe
	}
	return &QueryError{Kind: GenericError, Err: err}
}

// UserMessage returns the fixed user-facing text for any error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return AsQueryError(err).Message()
}
