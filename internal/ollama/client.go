// Package ollama provides a minimal client for the Ollama chat API.
package ollama

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultHost is the default Ollama API host.
	DefaultHost = "http://localhost:11434"

	// DefaultTimeout bounds a whole non-streaming request.
	DefaultTimeout = 60 * time.Second

	// DefaultModel is the small model used for color suggestions.
	DefaultModel = "ministral-3:3b"
)

// Client is an HTTP client for the Ollama API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Ollama client.
type Option func(*Client)

// WithHost sets the Ollama API host.
func WithHost(host string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(host, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Ollama client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultHost,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsAvailable checks if the Ollama server is running and responding.
func (c *Client) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// Host returns the configured base URL.
func (c *Client) Host() string {
	return c.baseURL
}
