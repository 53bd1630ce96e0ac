// Package source fetches record lists from a remote JSON endpoint.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/projectinsights/internal/logging"
)

// DefaultTimeout bounds a fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps the response size read from the endpoint.
const maxBodyBytes = 32 << 20

// Errors returned by the client.
var (
	// ErrFetchFailed is returned when the endpoint answers with a non-2xx status.
	ErrFetchFailed = errors.New("failed to fetch data")
	ErrEmptyURL    = errors.New("source URL is empty")
)

// Client reads JSON documents from a single URL.
type Client struct {
	url       string
	userAgent string
	http      *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for url. A zero timeout disables the
// client-side deadline; the caller's context still applies.
func NewClient(url string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client reads.
func (c *Client) URL() string {
	return c.url
}

// Get issues one GET and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, out any) error {
	if c.url == "" {
		return ErrEmptyURL
	}

	logger := logging.ComponentLogger(*logging.FromContext(ctx), "source")
	traceID := logging.GetOrGenerateTraceID(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(logging.TraceIDHeader, traceID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	logger.Debug().Ctx(ctx).Str("url", c.url).Msg("fetching")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug().Ctx(ctx).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: HTTP %d", ErrFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// FetchList retrieves a JSON array of records from the client's URL.
func FetchList[T any](ctx context.Context, c *Client) ([]T, error) {
	var items []T
	if err := c.Get(ctx, &items); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Ctx(ctx).
		Str("component", "source").
		Int("count", len(items)).
		Msg("records decoded")
	return items, nil
}
