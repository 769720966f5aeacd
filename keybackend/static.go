// Package keybackend provides the shared-secret token used to gate filtered catalog access.
package keybackend

import (
	"crypto/subtle"
	"fmt"

	"github.com/sagarc03/bookstall"
)

// StaticToken accepts exactly one configured token.
// Comparison is case-sensitive with no trimming or normalisation.
type StaticToken struct {
	secret []byte
}

// NewStaticToken creates a verifier accepting only secret. An empty secret rejects every token.
func NewStaticToken(secret string) *StaticToken {
	return &StaticToken{secret: []byte(secret)}
}

// Verify returns nil if token equals the configured secret.
func (s *StaticToken) Verify(token string) error {
	if len(s.secret) == 0 {
		return fmt.Errorf("no token configured: %w", bookstall.ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(token), s.secret) != 1 {
		return fmt.Errorf("token mismatch: %w", bookstall.ErrUnauthorized)
	}
	return nil
}
