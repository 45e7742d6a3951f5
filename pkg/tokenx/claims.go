package tokenx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("tokenx: invalid token")
	ErrExpired      = errors.New("tokenx: token expired")
	ErrWrongUse     = errors.New("tokenx: token minted for a different use")
)

// Token audiences keep session tokens and invite tokens from being
// replayed against the wrong surface: both are HS256 under the same
// secret, so the aud claim is what separates them.
const (
	AudienceSession = "session"
	AudienceInvite  = "invite"
)

// DefaultSessionTTL is the default lifetime of a bearer session token.
const DefaultSessionTTL = 12 * time.Hour

// Claims are the signed claims carried by both token kinds. Session
// tokens set Email; invite tokens carry only the invite id as subject.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated principal (session tokens only).
	Email string `json:"email,omitempty"`
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrInvalidToken
	}
	return nil
}

func (c *Claims) hasAudience(want string) bool {
	for _, aud := range c.Audience {
		if aud == want {
			return true
		}
	}
	return false
}
