// Package client implements the sarvcrm.Client interface: one HTTP
// transport, one session token, and a registry of module handles that all
// route through the same single API endpoint.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Radin-System/go-sarvcrm-api/internal/auth"
	"github.com/Radin-System/go-sarvcrm-api/internal/cache"
	"github.com/Radin-System/go-sarvcrm-api/internal/constants"
	sarvhttp "github.com/Radin-System/go-sarvcrm-api/internal/http"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// Client implements the sarvcrm.Client interface.
type Client struct {
	httpClient  *sarvhttp.Client
	credentials *auth.Credentials
	sessions    *auth.SessionStore
	logger      sarvcrm.Logger
	fieldsCache cache.Cache
	handles     map[string]*ModuleHandle
}

// New creates a client from config. BaseURL must already be normalized;
// the exported constructor in pkg/sarvclient takes care of that.
func New(config *sarvcrm.Config) (*Client, error) {
	if config == nil {
		return nil, sarvcrm.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, sarvcrm.ErrBaseURLRequired
	}

	sessions := auth.NewSessionStore()
	if config.AccessToken != "" {
		sessions.Set(config.AccessToken)
	}

	fieldsCache, err := cache.New(config.FieldsCache)
	if err != nil {
		return nil, fmt.Errorf("building fields cache: %w", err)
	}

	httpClient := sarvhttp.NewClient(config.BaseURL, sessions, buildHTTPOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: buildCredentials(config),
		sessions:    sessions,
		logger:      config.Logger,
		fieldsCache: fieldsCache,
	}

	client.initializeModuleHandles()

	return client, nil
}

// buildCredentials assembles login credentials, nil when the config has
// none and the client is token-only.
func buildCredentials(config *sarvcrm.Config) *auth.Credentials {
	if config.Username == "" && config.Password == "" {
		return nil
	}

	credentials := auth.NewCredentials(config.UserType, config.Username, config.Password, config.PasswordIsHashed)
	credentials.LoginType = config.LoginType

	credentials.Language = config.Language
	if credentials.Language == "" {
		credentials.Language = constants.DefaultLanguage
	}

	return credentials
}

// buildHTTPOptions translates config into transport options.
func buildHTTPOptions(config *sarvcrm.Config) []sarvhttp.Option {
	var opts []sarvhttp.Option

	if config.Logger != nil {
		opts = append(opts, sarvhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, sarvhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, sarvhttp.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, sarvhttp.WithTimeout(config.Timeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, sarvhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.RateLimit > 0 {
		opts = append(opts, sarvhttp.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	return opts
}

// initializeModuleHandles fills the registry with one handle per known
// module, keyed by wire name.
func (c *Client) initializeModuleHandles() {
	c.handles = make(map[string]*ModuleHandle, len(sarvcrm.Modules))
	for _, descriptor := range sarvcrm.Modules {
		c.handles[descriptor.Name] = NewModuleHandle(c, descriptor)
	}
}

// Login implements sarvcrm.SessionClient.Login.
func (c *Client) Login(ctx context.Context) (string, error) {
	if c.credentials == nil {
		return "", sarvcrm.ErrCredentialsRequired
	}

	query, err := sarvcrm.BuildRequestParams(sarvcrm.OpLogin, nil, nil)
	if err != nil {
		return "", fmt.Errorf("building login parameters: %w", err)
	}

	payload, err := c.send(ctx, http.MethodPost, query, c.credentials.LoginBody())
	if err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}

	var result struct {
		Token string `json:"token"`
	}

	// Any payload shape without a token (empty object, list, null) is a
	// failed login; the stored token stays untouched.
	if err := json.Unmarshal(payload, &result); err != nil || result.Token == "" {
		return "", sarvcrm.ErrAuthenticationFailed
	}

	c.sessions.Set(result.Token)

	if c.logger != nil {
		c.logger.Info("logged in", map[string]interface{}{
			"username": c.credentials.Username,
		})
	}

	return result.Token, nil
}

// Logout implements sarvcrm.SessionClient.Logout. The token is dropped
// locally; the server session expires on its own.
func (c *Client) Logout() {
	c.sessions.Clear()
}

// Token implements sarvcrm.SessionClient.Token.
func (c *Client) Token() string {
	return c.sessions.Get()
}

// SetToken implements sarvcrm.SessionClient.SetToken.
func (c *Client) SetToken(token string) {
	c.sessions.Set(token)
}

// SendRequest implements sarvcrm.RequestClient.SendRequest.
func (c *Client) SendRequest(ctx context.Context, method string, query url.Values, body interface{}) (json.RawMessage, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("%w: %q", sarvcrm.ErrUnsupportedMethod, method)
	}

	return c.send(ctx, method, query, body)
}

// RequestParams implements sarvcrm.RequestClient.RequestParams.
func (c *Client) RequestParams(op sarvcrm.Operation, module interface{}, extra map[string]string) (url.Values, error) {
	return sarvcrm.BuildRequestParams(op, module, extra)
}

// SearchByNumber implements sarvcrm.RequestClient.SearchByNumber.
func (c *Client) SearchByNumber(ctx context.Context, number string, module interface{}) (json.RawMessage, error) {
	query, err := sarvcrm.BuildRequestParams(sarvcrm.OpSearchByNumber, module, map[string]string{"number": number})
	if err != nil {
		return nil, fmt.Errorf("building search parameters: %w", err)
	}

	payload, err := c.send(ctx, http.MethodGet, query, nil)
	if err != nil {
		return nil, fmt.Errorf("searching by number: %w", err)
	}

	return payload, nil
}

// Module implements sarvcrm.Client.Module.
func (c *Client) Module(name string) (sarvcrm.ModuleClient, error) {
	handle, ok := c.handles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", sarvcrm.ErrUnknownModule, name)
	}

	return handle, nil
}

// Close implements sarvcrm.Client.Close.
func (c *Client) Close() error {
	if err := c.fieldsCache.Close(); err != nil {
		return fmt.Errorf("closing fields cache: %w", err)
	}

	return nil
}

// send performs the round trip and classifies the response. Errors coming
// back are already typed: *sarvcrm.TransportError for network failures,
// *sarvcrm.RedirectionError for 3xx, *sarvcrm.APIError for 4xx.
func (c *Client) send(ctx context.Context, method string, query url.Values, body interface{}) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(ctx, &sarvhttp.Request{Method: method, Query: query, Body: body})
	if err != nil {
		return nil, err
	}

	return sarvcrm.DecodeEnvelope(resp.StatusCode, resp.Body)
}
