// Package httpclient provides a retrying HTTP client for upstream API calls.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultMaxTries = 4
	userAgent       = "ecfr-sync/1.0"
)

// Client is the interface for fetching data over HTTP
type Client interface {
	// Get fetches the body at the given URL
	Get(ctx context.Context, url string) ([]byte, error)
}

// defaultClient implements Client with exponential backoff retries.
// Server errors and transport failures are retried; client errors are not.
type defaultClient struct {
	httpClient *http.Client
	maxTries   uint
}

// NewDefaultClient creates a new client with the given per-request timeout.
// A zero timeout selects the default.
func NewDefaultClient(timeout time.Duration) Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &defaultClient{
		httpClient: &http.Client{Timeout: timeout},
		maxTries:   defaultMaxTries,
	}
}

// Get fetches the body at the given URL, retrying transient failures
func (c *defaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	operation := func() ([]byte, error) {
		return c.doGet(ctx, url)
	}

	data, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *defaultClient) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		httpErr := NewHTTPError(resp.StatusCode, url, string(body))
		// Client errors will not improve on retry
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(httpErr)
		}
		return nil, httpErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
