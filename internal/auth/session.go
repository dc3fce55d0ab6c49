package auth

import (
	"context"
	"sync"
)

// SessionStore holds the current session token for one client instance.
// An empty token means unauthenticated. Access is mutex-guarded so a client
// shared across goroutines sees a consistent token.
type SessionStore struct {
	mu    sync.RWMutex
	token string
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns the current token, "" when unauthenticated.
func (s *SessionStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a token.
func (s *SessionStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear drops the token, returning the store to the unauthenticated state.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
}

// Token implements the transport's token provider: the stored token is
// always served as-is, with no refresh flow behind it.
func (s *SessionStore) Token(_ context.Context) (string, error) {
	return s.Get(), nil
}
