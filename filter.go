package zebr0

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// Filter names a post-processing transform applied to one resolved value.
// The set is closed; ParseFilter rejects anything else.
type Filter string

// The available filters.
const (
	// FilterNone returns the value unchanged, trailing newline included.
	FilterNone Filter = "none"

	// FilterStrip removes leading and trailing whitespace.
	FilterStrip Filter = "strip"

	// FilterRender substitutes {key} placeholders, recursively.
	FilterRender Filter = "render"

	// FilterJSON parses the value as JSON and re-serializes it compactly.
	FilterJSON Filter = "json"

	// FilterSh quotes the value for safe interpolation into a shell
	// command line.
	FilterSh Filter = "sh"

	// FilterHash returns the lowercase hex SHA-256 digest of the value.
	FilterHash Filter = "hash"

	// FilterLookup treats the value as another key and resolves it.
	FilterLookup Filter = "lookup"
)

// ParseFilter validates a filter name.
// An unknown name yields an error unwrapping to ErrUnknownFilter.
func ParseFilter(name string) (Filter, error) {
	switch f := Filter(name); f {
	case FilterNone, FilterStrip, FilterRender, FilterJSON, FilterSh, FilterHash, FilterLookup:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// Apply runs a single filter over a resolved value. Filters are stateless;
// render and lookup resolve through the client, the rest are pure.
func (c *Client) Apply(ctx context.Context, f Filter, value string) (string, error) {
	switch f {
	case FilterNone, "":
		return value, nil
	case FilterStrip:
		return strings.TrimSpace(value), nil
	case FilterRender:
		return c.render(ctx, value, 0, true)
	case FilterJSON:
		return filterJSON(value)
	case FilterSh:
		return shellescape.Quote(value), nil
	case FilterHash:
		digest := sha256.Sum256([]byte(value))
		return hex.EncodeToString(digest[:]), nil
	case FilterLookup:
		return c.lookup(ctx, value)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, string(f))
	}
}

// filterJSON round-trips the value through encoding/json, yielding a
// compact canonical form. Objects, arrays and scalars are all permitted.
func filterJSON(value string) (string, error) {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	encoded, err := json.Marshal(decoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return string(encoded), nil
}

// lookup resolves the value as a key name: one hop of indirection per call.
func (c *Client) lookup(ctx context.Context, value string) (string, error) {
	// Stored values routinely carry a trailing newline; the key is the
	// trimmed text.
	key := strings.TrimSpace(value)
	c.logger.Debug("lookup indirection", "key", key)

	return c.Resolve(ctx, key)
}
