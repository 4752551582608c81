package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidPayload      = errors.New("invalid upstream payload")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidHSNCode      = errors.New("invalid HSN code")
	ErrNoHSNCodes          = errors.New("no HSN codes supplied")
	ErrTooManyHSNCodes     = errors.New("too many HSN codes in one request")
)

// UpstreamStatusError reports a non-200 response from an upstream service.
type UpstreamStatusError struct {
	Service    string
	Endpoint   string
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Service, e.Endpoint, e.StatusCode)
}

// Unwrap maps 401/403 to ErrUnauthorized and everything else to ErrUpstreamUnavailable.
func (e *UpstreamStatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return ErrUpstreamUnavailable
}
