package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/motorhub/carcare/pkg/logger"
	"github.com/motorhub/carcare/pkg/middleware"
	"go.uber.org/zap"
)

// DefaultTimeout is the fixed transport timeout for every remote call
const DefaultTimeout = 10 * time.Second

// RequestInterceptor transforms an outgoing request before it is sent
type RequestInterceptor func(*http.Request) *http.Request

// ResponseInterceptor observes a completed call. It must return the original
// error unchanged unless it has a reason to replace it; the default chain
// only logs.
type ResponseInterceptor func(*http.Response, error) (*http.Response, error)

// Client is the single point of truth for all remote reads and writes. It
// hides transport concerns (base URL, timeout, headers) from callers and does
// not retry, cache, or validate beyond type shape.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	authToken     string
	requestChain  []RequestInterceptor
	responseChain []ResponseInterceptor
}

// Option configures the client at construction
type Option func(*Client)

// WithTimeout overrides the default transport timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying transport (used by tests)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestInterceptor appends an interceptor to the pre-request chain
func WithRequestInterceptor(interceptor RequestInterceptor) Option {
	return func(c *Client) {
		c.requestChain = append(c.requestChain, interceptor)
	}
}

// WithResponseInterceptor appends an interceptor to the post-response chain
func WithResponseInterceptor(interceptor ResponseInterceptor) Option {
	return func(c *Client) {
		c.responseChain = append(c.responseChain, interceptor)
	}
}

// New creates a client for the given base URL. The default interceptor chain
// holds the auth-token injector (a no-op until SetAuthToken is called) and
// the centralized transport-error logger.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	c.requestChain = []RequestInterceptor{c.injectAuthToken}
	c.responseChain = []ResponseInterceptor{logTransportError}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetAuthToken attaches a bearer token to every subsequent request.
// An empty token leaves requests untouched.
func (c *Client) SetAuthToken(token string) {
	c.authToken = token
}

func (c *Client) injectAuthToken(req *http.Request) *http.Request {
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	return req
}

// logTransportError records transport failures once before propagation. It
// never swallows or transforms the error.
func logTransportError(resp *http.Response, err error) (*http.Response, error) {
	if err != nil {
		logger.Error("api request failed", zap.Error(err))
	}
	return resp, err
}

// HTTPError represents a non-2xx response from the remote service
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Response is the uniform envelope every remote operation returns. A Data of
// nil on success is only valid for void operations.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// VoidResponse is the envelope of void operations (delete, mark-read)
type VoidResponse = Response[struct{}]

// do performs one remote call through the interceptor chains and decodes the
// envelope. Transport failures (network, timeout, non-2xx) surface as errors;
// envelope-level failures come back as data with Success == false.
func do[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*Response[T], error) {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	injectCorrelationID(ctx, req)

	for _, interceptor := range c.requestChain {
		req = interceptor(req)
	}

	resp, err := c.httpClient.Do(req)

	var respBody []byte
	if err == nil {
		defer resp.Body.Close()
		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			err = fmt.Errorf("failed to read response body: %w", err)
		} else if resp.StatusCode >= 400 {
			err = &HTTPError{
				StatusCode: resp.StatusCode,
				Body:       string(respBody),
			}
		}
	}

	for _, interceptor := range c.responseChain {
		resp, err = interceptor(resp, err)
	}

	if err != nil {
		return nil, err
	}

	envelope := &Response[T]{}
	if err := json.Unmarshal(respBody, envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return envelope, nil
}

func injectCorrelationID(ctx context.Context, req *http.Request) {
	if ctx == nil || req == nil {
		return
	}

	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(middleware.CorrelationIDHeader, correlationID)
	}
}
