package scribe

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCategory says whether repeating a failed provider call can help.
type ErrorCategory string

const (
	// ErrorTransient covers rate limits and server-side failures.
	ErrorTransient ErrorCategory = "transient"
	// ErrorPermanent covers authentication and other failures a repeat will not fix.
	ErrorPermanent ErrorCategory = "permanent"
	// ErrorUserInput covers rejected requests: bad parameters, unknown models.
	ErrorUserInput ErrorCategory = "user_input"
)

// ProviderError is a provider API call that failed with an HTTP status.
type ProviderError struct {
	Provider Provider
	Category ErrorCategory
	Status   int
	// RetryAfter is the server's Retry-After hint, zero when absent.
	RetryAfter time.Duration
	Err        error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError classifies err by its HTTP status. A Retry-After hint
// always makes the error transient.
func NewProviderError(provider Provider, status int, retryAfter time.Duration, err error) *ProviderError {
	category := categoryFor(status)
	if retryAfter > 0 {
		category = ErrorTransient
	}
	return &ProviderError{
		Provider:   provider,
		Category:   category,
		Status:     status,
		RetryAfter: retryAfter,
		Err:        err,
	}
}

func categoryFor(status int) ErrorCategory {
	switch {
	case status == http.StatusTooManyRequests, status >= 500 && status < 600:
		return ErrorTransient
	case status == http.StatusBadRequest, status == http.StatusNotFound, status == http.StatusUnprocessableEntity:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// AsProviderError returns the first *ProviderError in err's chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsTransient reports whether err carries a transient provider failure.
func IsTransient(err error) bool {
	pe, ok := AsProviderError(err)
	return ok && pe.Category == ErrorTransient
}
