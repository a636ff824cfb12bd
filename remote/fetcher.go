package remote

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Fetcher performs single-GET lookups against a key-value repository.
type Fetcher struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

// Config holds configuration for Fetcher.
type Config struct {
	// BaseURL is the root of the key-value repository.
	BaseURL string

	// Client is the HTTP client to use. Defaults to http.DefaultClient,
	// with whatever timeouts its transport provides; the tool's calls are
	// synchronous, sequential and infrequent, so no extra policy is layered
	// on top.
	Client *http.Client

	// Logger receives debug-level fetch logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewFetcher creates a Fetcher with the given configuration.
func NewFetcher(cfg Config) *Fetcher {
	f := &Fetcher{
		client:  cfg.Client,
		baseURL: cfg.BaseURL,
		logger:  cfg.Logger,
	}

	if f.client == nil {
		f.client = http.DefaultClient
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// BaseURL returns the repository root the fetcher queries.
func (f *Fetcher) BaseURL() string {
	return f.baseURL
}

// Fetch issues one GET for key and returns the response body.
//
// A 404 yields ErrNotFound. Any other non-200 status or connection failure
// yields an error unwrapping to ErrUnreachable.
func (f *Fetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	// Plain concatenation, no escaping: the key is the path.
	url := f.baseURL + "/" + key

	f.logger.Debug("fetching key", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	default:
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
}
