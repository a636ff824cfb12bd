package zebr0

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution and filtering failures.
var (
	// ErrUnknownFilter indicates a filter name outside the fixed set.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrInvalidJSON indicates the json filter received malformed input.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrDepthExceeded indicates recursive rendering or lookup chained past
	// MaxDepth, almost always a cycle in the remote repository.
	ErrDepthExceeded = errors.New("maximum recursion depth exceeded")
)

// KeyNotFoundError reports a key absent at every fallback tier.
type KeyNotFoundError struct {
	// Key is the bare key that was requested.
	Key string

	// Project and Stage are the namespaces that were tried.
	Project string
	Stage   string

	// URL is the repository root that was queried.
	URL string
}

// Error implements the error interface.
func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found anywhere for project %q, stage %q in %q",
		e.Key, e.Project, e.Stage, e.URL)
}

// IsKeyNotFound reports whether the error indicates an unresolvable key.
func IsKeyNotFound(err error) bool {
	var notFound *KeyNotFoundError
	return errors.As(err, &notFound)
}
