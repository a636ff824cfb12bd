package zebr0

import (
	"context"
	"fmt"
	"strings"
)

// Render substitutes every {key} placeholder in text with the key's
// resolved value, in a single left-to-right pass. Text outside placeholders
// passes through byte for byte.
//
// Placeholders carry no default: an unresolvable key is fatal. Substituted
// values are spliced in raw, without further expansion; the render filter
// provides the recursive variant. There is no escape for literal braces; an
// unclosed "{", a "{" containing another "{", and the empty span "{}" all
// pass through unchanged.
func (c *Client) Render(ctx context.Context, text string) (string, error) {
	return c.render(ctx, text, 0, false)
}

func (c *Client) render(ctx context.Context, text string, depth int, expand bool) (string, error) {
	if depth >= c.maxDepth {
		return "", fmt.Errorf("%w: template nested deeper than %d", ErrDepthExceeded, c.maxDepth)
	}

	var out strings.Builder
	rest := text

	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}

		span := rest[open+1:]
		close := strings.IndexByte(span, '}')
		nested := strings.IndexByte(span, '{')
		if close < 0 || (nested >= 0 && nested < close) || close == 0 {
			// Not a placeholder: unclosed, nested or empty braces are
			// literal text.
			out.WriteString(rest[:open+1])
			rest = span
			continue
		}

		key := span[:close]
		value, err := c.Resolve(ctx, key)
		if err != nil {
			return "", fmt.Errorf("render placeholder {%s}: %w", key, err)
		}

		if expand && strings.ContainsRune(value, '{') {
			value, err = c.render(ctx, value, depth+1, true)
			if err != nil {
				return "", err
			}
		}

		out.WriteString(rest[:open])
		out.WriteString(value)
		rest = span[close+1:]
	}
}
