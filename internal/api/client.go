package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/diogo/termchat/internal/errors"
	"github.com/diogo/termchat/internal/models"
)

const (
	// DefaultTimeout bounds every request, streaming ones included
	DefaultTimeout = 300 * time.Second
	// DefaultMaxTokens is sent as max_tokens on Anthropic requests
	DefaultMaxTokens = 4096

	maxErrorBody = 4096
)

// Doer is the part of tls_client.HttpClient the client needs
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Indicator is shown while the client waits for a response
type Indicator interface {
	Start()
	Stop()
}

type noopIndicator struct{}

func (noopIndicator) Start() {}
func (noopIndicator) Stop()  {}

// Client talks to the OpenAI and Anthropic APIs
type Client struct {
	httpClient   Doer
	openAIKey    string
	anthropicKey string
	indicator    Indicator
	timeout      time.Duration
	maxTokens    int
	logger       *slog.Logger
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the TLS client, mostly for tests
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithOpenAIKey sets the OpenAI API key
func WithOpenAIKey(key string) ClientOption {
	return func(c *Client) {
		c.openAIKey = key
	}
}

// WithAnthropicKey sets the Anthropic API key
func WithAnthropicKey(key string) ClientOption {
	return func(c *Client) {
		c.anthropicKey = key
	}
}

// WithIndicator sets the waiting indicator used by buffered and streaming requests
func WithIndicator(ind Indicator) ClientOption {
	return func(c *Client) {
		if ind != nil {
			c.indicator = ind
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxTokens sets max_tokens for Anthropic requests
func WithMaxTokens(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxTokens = n
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Client. Without WithHTTPClient a Chrome-profile TLS client is built.
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		indicator: noopIndicator{},
		timeout:   DefaultTimeout,
		maxTokens: DefaultMaxTokens,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// HasProvider reports whether a key is configured for the provider
func (c *Client) HasProvider(p models.Provider) bool {
	return c.key(p) != ""
}

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

func (c *Client) key(p models.Provider) string {
	if p == models.ProviderAnthropic {
		return c.anthropicKey
	}
	return c.openAIKey
}

// newRequest builds a request with the provider's auth headers
func (c *Client) newRequest(ctx context.Context, method, endpoint string, provider models.Provider, payload any) (*http.Request, error) {
	key := c.key(provider)
	if key == "" {
		return nil, apierrors.NewAuthError(provider.String(), "no API key configured")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	switch provider {
	case models.ProviderAnthropic:
		req.Header.Set("x-api-key", key)
		req.Header.Set("anthropic-version", models.AnthropicVersion)
	default:
		req.Header.Set("Authorization", "Bearer "+key)
	}

	return req, nil
}

// do sends the request and turns transport failures and non-2xx statuses into typed errors.
// On success the caller owns resp.Body.
func (c *Client) do(ctx context.Context, req *http.Request, operation string) (*http.Response, error) {
	endpoint := req.URL.String()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(fmt.Sprintf("%s timed out after %s", operation, c.timeout))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apierrors.NewNetworkErrorWithEndpoint(operation, endpoint, ctxErr)
		}
		return nil, apierrors.NewNetworkErrorWithEndpoint(operation, endpoint, err)
	}

	c.logger.Debug("api response",
		"operation", operation,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, endpoint,
			fmt.Sprintf("%s failed: %s", operation, errorMessage(errorBody)), string(errorBody))
	}

	return resp, nil
}

// readBody reads a full response body, mapping a deadline into a TimeoutError
func (c *Client) readBody(ctx context.Context, resp *http.Response, operation string) ([]byte, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierrors.NewTimeoutError(fmt.Sprintf("%s timed out after %s", operation, c.timeout))
		}
		return nil, apierrors.NewNetworkError(operation, err)
	}
	return body, nil
}
