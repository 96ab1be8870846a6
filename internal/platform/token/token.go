// Package token generates opaque session tokens and derives the lookup hashes
// under which they are stored.
package token

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// rawTokenBytes is the entropy of a raw session token (256 bits).
const rawTokenBytes = 32

// Codec issues raw session tokens and derives their storage keys.
// The raw token is handed to the client exactly once; only the keyed hash is
// ever persisted, so a database read alone cannot impersonate a session.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec with the given server-held secret.
// Rotating the secret invalidates every outstanding session.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// GenerateToken returns a new cryptographically random raw token,
// hex-encoded to a fixed 64-character string.
func (c *Codec) GenerateToken() (string, error) {
	buf := make([]byte, rawTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// DeriveLookupHash returns the deterministic HMAC-SHA256 hex digest of a raw
// token. This is the only form of the token that may be stored.
func (c *Codec) DeriveLookupHash(rawToken string) string {
	m := hmac.New(sha256.New, c.secret)
	m.Write([]byte(rawToken))
	return hex.EncodeToString(m.Sum(nil))
}
