// Package remote fetches raw key values from a key-value repository over
// HTTP.
//
// The wire contract is deliberately minimal: one GET per fetch against
// "<base-url>/<key>", status 200 with body bytes on a hit, 404 on a miss.
// Anything else is a transport failure and is never retried. The key is
// joined to the base URL by plain "/" concatenation with no URL-escaping,
// for wire compatibility with existing repository layouts; keys containing
// characters that are meaningful in URLs are the caller's problem.
package remote

import (
	"errors"
	"fmt"
)

// Sentinel errors for fetch outcomes.
var (
	// ErrNotFound indicates the key does not exist at the requested path.
	// Callers may fall back to another tier or a default value.
	ErrNotFound = errors.New("key not found")

	// ErrUnreachable indicates the repository could not be queried: a
	// connection failure or a non-404 error status. Fatal, never retried.
	ErrUnreachable = errors.New("repository unreachable")
)

// StatusError reports an unexpected HTTP status from the repository.
type StatusError struct {
	// URL is the full URL that was requested.
	URL string

	// StatusCode is the HTTP status code returned.
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// Unwrap returns ErrUnreachable.
func (e *StatusError) Unwrap() error {
	return ErrUnreachable
}

// IsNotFound reports whether the error indicates a missing key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransport reports whether the error indicates the repository could not
// be queried at all.
func IsTransport(err error) bool {
	return errors.Is(err, ErrUnreachable)
}
