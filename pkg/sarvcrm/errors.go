package sarvcrm

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a 4xx response from the CRM API.
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Message)
}

// RedirectionError represents a 3xx response from the CRM API.
type RedirectionError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *RedirectionError) Error() string {
	return fmt.Sprintf("redirection response: %d - %s", e.StatusCode, e.Message)
}

// TransportError represents a network-level failure or a response outside
// the decodable [200, 500) status window. The body is never decoded; the
// underlying failure, when present, is available via Unwrap.
type TransportError struct {
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport failure: %v", e.Err)
	}

	return fmt.Sprintf("transport failure: server returned status %d", e.StatusCode)
}

// Unwrap returns the underlying transport failure, if any.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Common static errors that can be wrapped with context.
var (
	ErrUnsupportedMethod    = errors.New("unsupported HTTP method")
	ErrInvalidModuleType    = errors.New("module must be a handle, a descriptor, or a string")
	ErrInvalidFormatMode    = errors.New("unknown time format mode")
	ErrEmptyResult          = errors.New("no matching records")
	ErrAuthenticationFailed = errors.New("authentication failed: no token in login response")
	ErrCredentialsRequired  = errors.New("username and password are required to log in")
	ErrUnknownModule        = errors.New("unknown module")
	ErrConfigRequired       = errors.New("config is required")
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrNoMorePages          = errors.New("no more pages")
)

// IsNotFound checks if the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 API error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a 403 API error.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsAPIError checks if the error is any 4xx API error.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// IsRedirection checks if the error is a 3xx redirection error.
func IsRedirection(err error) bool {
	redirErr := &RedirectionError{}

	return errors.As(err, &redirErr)
}

// IsTransportError checks if the error is a transport-level failure.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}
