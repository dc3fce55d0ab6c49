// Package auth holds the credential and session-token state for one client:
// the MD5-hashed login identity and the mutable bearer token the Login
// operation issues.
package auth

import (
	"crypto/md5" // #nosec G501 -- the API authenticates with MD5-hashed passwords
	"encoding/hex"
)

// HashPassword returns the MD5 hex digest the Login operation expects in
// the password field.
func HashPassword(plaintext string) string {
	digest := md5.Sum([]byte(plaintext)) // #nosec G401 -- required by the wire protocol

	return hex.EncodeToString(digest[:])
}

// Credentials is the immutable login identity of a client. The password is
// hashed once at construction and the plaintext is never retained.
type Credentials struct {
	UserType  string
	Username  string
	LoginType string
	Language  string

	passwordHash string
}

// NewCredentials builds credentials, hashing password unless alreadyHashed
// asserts the value is the MD5 hex digest itself.
func NewCredentials(userType, username, password string, alreadyHashed bool) *Credentials {
	credentials := &Credentials{
		UserType: userType,
		Username: username,
	}

	if alreadyHashed {
		credentials.passwordHash = password
	} else {
		credentials.passwordHash = HashPassword(password)
	}

	return credentials
}

// PasswordHash returns the stored credential digest.
func (c *Credentials) PasswordHash() string {
	return c.passwordHash
}

// LoginBody assembles the Login request body. Unset values are omitted
// entirely, never sent as empty strings.
func (c *Credentials) LoginBody() map[string]string {
	body := make(map[string]string, 5)

	if c.UserType != "" {
		body["utype"] = c.UserType
	}

	if c.Username != "" {
		body["user_name"] = c.Username
	}

	if c.passwordHash != "" {
		body["password"] = c.passwordHash
	}

	if c.LoginType != "" {
		body["login_type"] = c.LoginType
	}

	if c.Language != "" {
		body["language"] = c.Language
	}

	return body
}
