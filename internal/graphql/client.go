// Package graphql is the client for the price and signals GraphQL API.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"solana-signal-lab/internal/observability"
)

// Known API gateways.
var Endpoints = map[string]string{
	"sandbox": "https://gcp-sandbox-gateway.rift.ai/graphql/api",
	"staging": "https://gcp-staging-gateway.rift.ai/graphql/api",
}

// DefaultEndpoint is used when no endpoint is configured.
const DefaultEndpoint = "sandbox"

// ResolveEndpoint maps a gateway name to its URL. Anything else is
// treated as an explicit URL.
func ResolveEndpoint(nameOrURL string) string {
	if nameOrURL == "" {
		nameOrURL = DefaultEndpoint
	}
	if url, ok := Endpoints[strings.ToLower(nameOrURL)]; ok {
		return url
	}
	return nameOrURL
}

// Default configuration values.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxRetries  = 3
	DefaultRetryDelay  = 500 * time.Millisecond
	DefaultMaxDelay    = 5 * time.Second
	DefaultBackoffMult = 2.0
)

var (
	// ErrEmptyResponse is returned when the API answers without data.
	ErrEmptyResponse = errors.New("empty response from API")

	// ErrNetwork is returned when the API could not be reached.
	ErrNetwork = errors.New("network error, please check your internet connection")

	// ErrNotFound is returned when a requested signal does not exist.
	ErrNotFound = errors.New("not found")
)

// APIError carries the messages of a GraphQL errors array.
type APIError struct {
	Messages []string
}

func (e *APIError) Error() string {
	return "API error: " + strings.Join(e.Messages, ", ")
}

// Client is a GraphQL-over-HTTP client with retries and exponential backoff.
type Client struct {
	endpoint    string
	client      *http.Client
	maxRetries  int
	retryDelay  time.Duration
	maxDelay    time.Duration
	backoffMult float64
	headers     map[string]string
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithMaxRetries sets maximum retry attempts.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithRetryDelay sets initial retry delay.
func WithRetryDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// WithMaxDelay sets maximum retry delay.
func WithMaxDelay(d time.Duration) ClientOption {
	return func(c *Client) {
		c.maxDelay = d
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithHeader adds a header to every request, e.g. an API key.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// NewClient creates a client for a gateway name or URL.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:    ResolveEndpoint(endpoint),
		client:      &http.Client{Timeout: DefaultTimeout},
		maxRetries:  DefaultMaxRetries,
		retryDelay:  DefaultRetryDelay,
		maxDelay:    DefaultMaxDelay,
		backoffMult: DefaultBackoffMult,
		headers:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the resolved URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

// errTransport marks failures where the server was never reached.
type errTransport struct{ err error }

func (e *errTransport) Error() string { return e.err.Error() }
func (e *errTransport) Unwrap() error { return e.err }

// do runs a query and decodes data into result.
// GraphQL errors are not retried.
func (c *Client) do(ctx context.Context, operation, query string, vars map[string]interface{}, result interface{}) (err error) {
	start := time.Now()
	defer func() {
		observability.RecordUpstream(operation, time.Since(start).Seconds(), errorKind(err))
	}()

	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	delay := c.retryDelay
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * c.backoffMult)
			if delay > c.maxDelay {
				delay = c.maxDelay
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = &errTransport{err: err}
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = &errTransport{err: fmt.Errorf("read response: %w", err)}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(respBody, 200))
			continue
		}

		var gqlResp gqlResponse
		if err := json.Unmarshal(respBody, &gqlResp); err != nil {
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(respBody, 200))
			}
			return fmt.Errorf("unmarshal response: %w", err)
		}

		if len(gqlResp.Errors) > 0 {
			msgs := make([]string, len(gqlResp.Errors))
			for i, e := range gqlResp.Errors {
				msgs[i] = e.Message
			}
			return &APIError{Messages: msgs}
		}

		if len(gqlResp.Data) == 0 || bytes.Equal(gqlResp.Data, []byte("null")) {
			return ErrEmptyResponse
		}

		if result != nil {
			if err := json.Unmarshal(gqlResp.Data, result); err != nil {
				return fmt.Errorf("unmarshal data: %w", err)
			}
		}
		return nil
	}

	var te *errTransport
	if errors.As(lastErr, &te) {
		return fmt.Errorf("%w: %v", ErrNetwork, te.err)
	}
	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func errorKind(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return "api"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "other"
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
