package zebr0

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/zebr0/zebr0-go/params"
	"github.com/zebr0/zebr0-go/remote"
)

// DefaultMaxDepth bounds recursive render and lookup chains. The original
// behavior had no such bound; the limit exists so a misconfigured repository
// with a value cycle fails instead of looping forever.
const DefaultMaxDepth = 32

// Client resolves keys against a remote repository using the three-tier
// fallback algorithm.
type Client struct {
	parameters params.Parameters
	fetcher    *remote.Fetcher
	logger     *slog.Logger
	maxDepth   int
}

// ClientConfig holds configuration for Client.
type ClientConfig struct {
	// Parameters are the identity values addressing the remote repository.
	Parameters params.Parameters

	// HTTPClient is passed to the fetcher. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives debug logs. Defaults to slog.Default().
	Logger *slog.Logger

	// MaxDepth bounds recursive render and lookup chains.
	// Defaults to DefaultMaxDepth.
	MaxDepth int
}

// NewClient creates a new Client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		parameters: cfg.Parameters,
		logger:     cfg.Logger,
		maxDepth:   cfg.MaxDepth,
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.maxDepth <= 0 {
		c.maxDepth = DefaultMaxDepth
	}

	c.fetcher = remote.NewFetcher(remote.Config{
		BaseURL: cfg.Parameters.URL,
		Client:  cfg.HTTPClient,
		Logger:  c.logger,
	})

	c.logger.Debug("client configured",
		"url", cfg.Parameters.URL,
		"project", cfg.Parameters.Project,
		"stage", cfg.Parameters.Stage,
	)

	return c
}

// Parameters returns the identity values the client was built with.
func (c *Client) Parameters() params.Parameters {
	return c.parameters
}

// Resolve fetches the value of key, trying "<stage>/<key>", then
// "<project>/<key>", then the bare key, and returning the first hit.
//
// If the key is absent at every tier it returns a *KeyNotFoundError. A
// transport failure at any tier aborts immediately without trying the
// remaining tiers: an absent key allows fallback, an unreachable repository
// does not.
func (c *Client) Resolve(ctx context.Context, key string) (string, error) {
	return c.resolve(ctx, key, nil)
}

// ResolveDefault behaves like Resolve but returns def when the key is
// absent at every tier.
func (c *Client) ResolveDefault(ctx context.Context, key, def string) (string, error) {
	return c.resolve(ctx, key, &def)
}

func (c *Client) resolve(ctx context.Context, key string, def *string) (string, error) {
	var tiers []string
	if c.parameters.Stage != "" {
		tiers = append(tiers, c.parameters.Stage+"/"+key)
	}
	if c.parameters.Project != "" {
		tiers = append(tiers, c.parameters.Project+"/"+key)
	}
	tiers = append(tiers, key)

	for _, path := range tiers {
		value, err := c.fetcher.Fetch(ctx, path)
		if err == nil {
			return string(value), nil
		}
		if !remote.IsNotFound(err) {
			return "", err
		}
	}

	if def != nil {
		c.logger.Debug("key not found, using default", "key", key)
		return *def, nil
	}

	return "", &KeyNotFoundError{
		Key:     key,
		Project: c.parameters.Project,
		Stage:   c.parameters.Stage,
		URL:     c.parameters.URL,
	}
}
