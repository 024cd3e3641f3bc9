package providers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrInvalidFormat means the upstream body had no usable "response" envelope.
	ErrInvalidFormat = errors.New("invalid API response format")
	// ErrProviderUnavailable is returned when no provider is wired.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// StatusError captures a non-200 response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "API request failed"
	}
	return fmt.Sprintf("%s with status %d", msg, e.StatusCode)
}

// RateLimited reports whether the upstream rejected the call for quota reasons.
func (e *StatusError) RateLimited() bool {
	return e != nil && e.StatusCode == http.StatusTooManyRequests
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// UpstreamError marks a failure that happened while talking to the upstream, as opposed to
// a local storage failure later in the same operation.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		return upErr, true
	}
	return nil, false
}
