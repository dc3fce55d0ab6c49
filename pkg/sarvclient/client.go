// Package sarvclient provides the main entry point for creating SarvCRM API clients
package sarvclient

import (
	"fmt"
	"strings"

	"github.com/Radin-System/go-sarvcrm-api/internal/client"
	"github.com/Radin-System/go-sarvcrm-api/pkg/sarvcrm"
)

// New creates a new SarvCRM API client from the given configuration.
//
// Construction never talks to the server. Credentials are only exchanged for
// a session token when Login is called, so New works offline.
func New(config *sarvcrm.Config) (sarvcrm.Client, error) {
	if config == nil {
		return nil, sarvcrm.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, sarvcrm.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with a base URL and a pre-obtained
// session token. No credentials are configured, so Login is unavailable on
// the returned client.
func NewWithToken(baseURL, token string) (sarvcrm.Client, error) {
	return New(&sarvcrm.Config{
		BaseURL:     baseURL,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client using username/password authentication.
// Call Login on the returned client to obtain a session token.
func NewWithPassword(baseURL, userType, username, password string) (sarvcrm.Client, error) {
	return New(&sarvcrm.Config{
		BaseURL:  baseURL,
		UserType: userType,
		Username: username,
		Password: password,
	})
}
