// Package http implements the transport underneath the client: one base
// endpoint, JSON bodies, bearer authentication, and raw status/body
// responses. Interpreting the response envelope is the caller's concern,
// which keeps the wire I/O and the status classification separately
// testable.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// TokenProvider supplies the session token attached to requests. An empty
// token means unauthenticated and omits the Authorization header.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Request describes one call against the endpoint. The protocol selects
// behavior by query parameters, so there is no path component.
type Request struct {
	Method  string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response carries the raw result of a call.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Client is the HTTP transport for the single API endpoint.
type Client struct {
	baseURL   string
	tokens    TokenProvider
	http      *retryablehttp.Client
	userAgent string
	logger    sarvcrm.Logger
	debug     bool
	limiter   *rate.Limiter
}

// Option configures the transport.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger sarvcrm.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig opts into retrying 5xx and 429 responses. The protocol
// default is no retries: a failed call is one reported failure.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.http.RetryMax = retryMax
		if waitMin > 0 {
			c.http.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.http.RetryWaitMax = waitMax
		}

		if retryMax > 0 {
			c.http.CheckRetry = retryablehttp.DefaultRetryPolicy
		}
	}
}

// WithRateLimit throttles outgoing requests client-side. Every attempt,
// including retries, waits for the limiter.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			if burst <= 0 {
				burst = 1
			}

			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
		}
	}
}

// NewClient creates a transport for baseURL. Retries are disabled until
// WithRetryConfig opts in; the passthrough error handler keeps the final
// response readable either way so callers can classify it.
func NewClient(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.CheckRetry = neverRetry
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		tokens:    tokens,
		http:      retryClient,
		userAgent: "go-sarvcrm-api/" + sarvcrm.Version,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.limiter != nil {
		retryClient.HTTPClient.Transport = &throttledTransport{
			next:    defaultTransport(retryClient.HTTPClient.Transport),
			limiter: client.limiter,
		}
	}

	return client
}

// neverRetry keeps the no-retry contract while still surfacing the final
// response through the passthrough error handler.
func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}

// throttledTransport waits for the rate limiter before each attempt.
type throttledTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	return t.next.RoundTrip(req)
}

func defaultTransport(transport http.RoundTripper) http.RoundTripper {
	if transport != nil {
		return transport
	}

	return http.DefaultTransport
}

// Do performs one request and returns the raw status and body. Network
// failures come back as *sarvcrm.TransportError; status codes of any range
// pass through untouched for the caller to interpret.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var rawBody interface{}

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = encoded
	}

	endpoint := c.baseURL
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	// The protocol sends JSON on every call, body or not.
	httpReq.Header.Set("Content-Type", constants.HeaderContentType)
	httpReq.Header.Set("Accept", constants.HeaderContentType)
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.tokens != nil {
		token, tokenErr := c.tokens.Token(ctx)
		if tokenErr != nil {
			return nil, fmt.Errorf("getting token: %w", tokenErr)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
		})
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &sarvcrm.TransportError{Err: fmt.Errorf("executing request: %w", err)}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &sarvcrm.TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"status": httpResp.StatusCode,
			"size":   len(body),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Query: query, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, query url.Values, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Query: query, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Query: query})
}
