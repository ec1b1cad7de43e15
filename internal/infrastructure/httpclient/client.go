// Package httpclient adapts net/http to port.HTTPClient.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/includs/internal/application/port"
	"github.com/bnema/includs/internal/logging"
)

const maxBodyBytes = 8 << 20

// Client issues one request per call. It never retries.
type Client struct {
	client    *http.Client
	userAgent string
}

var _ port.HTTPClient = (*Client)(nil)

// New returns a client. A zero timeout leaves requests bounded only by the
// context and the transport.
func New(timeout time.Duration, userAgent string) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// WithTransport swaps the round tripper, mostly for tests.
func (c *Client) WithTransport(rt http.RoundTripper) *Client {
	c.client.Transport = rt
	return c
}

func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*port.HTTPResponse, error) {
	return c.do(ctx, http.MethodGet, url, headers, nil)
}

func (c *Client) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*port.HTTPResponse, error) {
	return c.do(ctx, http.MethodPost, url, headers, body)
}

func (c *Client) do(ctx context.Context, method, url string, headers map[string]string, body []byte) (*port.HTTPResponse, error) {
	log := logging.FromContext(ctx)

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("url", url).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return &port.HTTPResponse{StatusCode: resp.StatusCode, Body: data}, nil
}
