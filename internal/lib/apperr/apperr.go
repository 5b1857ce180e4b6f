// Package apperr defines the error taxonomy shared between domain services
// and the HTTP layer. Services return errors wrapping one of the sentinel
// values below; the HTTP layer maps them to status codes with HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey means no explorer API key is configured for the
	// requested network.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidAPIKey means the upstream explorer rejected our key.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrRateLimited means the upstream explorer throttled the request.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUpstream covers transport failures and malformed payloads from
	// any upstream data source.
	ErrUpstream = errors.New("upstream failure")
)

// MissingKey reports a missing explorer key for a network.
func MissingKey(network string) error {
	return fmt.Errorf("missing %s API key: %w", network, ErrMissingAPIKey)
}

// InvalidKey reports an upstream key rejection for a network.
func InvalidKey(network string) error {
	return fmt.Errorf("invalid %s API key: %w", network, ErrInvalidAPIKey)
}

// RateLimited reports upstream throttling for a network.
func RateLimited(network string) error {
	return fmt.Errorf("%s API rate limit exceeded: %w", network, ErrRateLimited)
}

// Upstream wraps a transport or malformed-payload failure from a source.
func Upstream(source string, err error) error {
	if err == nil {
		return fmt.Errorf("error fetching from %s: %w", source, ErrUpstream)
	}
	return fmt.Errorf("error fetching from %s: %v: %w", source, err, ErrUpstream)
}

// HTTPStatus maps an error to the status code the API surface exposes.
// Anything outside the taxonomy is an unhandled error (500).
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAPIKey):
		return http.StatusUnauthorized
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, ErrMissingAPIKey):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
