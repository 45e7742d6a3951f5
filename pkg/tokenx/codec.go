package tokenx

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec mints and verifies HMAC-SHA256 signed tokens with a single
// server-held secret. Verification is pure and stateless; a Codec is
// safe for unlimited concurrent use.
type Codec struct {
	secret []byte
	issuer string
}

func NewCodec(secret []byte, issuer string) (*Codec, error) {
	if len(secret) < 32 {
		return nil, errors.New("tokenx: secret must be at least 32 bytes")
	}
	return &Codec{secret: secret, issuer: issuer}, nil
}

// MintSession issues a bearer session token for an authenticated
// principal.
func (c *Codec) MintSession(principalID, email string, ttl time.Duration, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   principalID,
			Audience:  jwt.ClaimStrings{AudienceSession},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Email: email,
	}
	return c.sign(claims)
}

// MintInvite issues a token over {invite_id, exp}. The exp is supplied
// by the caller so a resent token never outlives the invite row it
// backs.
func (c *Codec) MintInvite(inviteID string, expiresAt, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   inviteID,
			Audience:  jwt.ClaimStrings{AudienceInvite},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        newJTI(),
		},
	}
	return c.sign(claims)
}

func (c *Codec) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("tokenx: signing failed: %w", err)
	}
	return signed, nil
}

// VerifySession verifies a bearer session token and returns its claims.
func (c *Codec) VerifySession(raw string) (Claims, error) {
	return c.verify(raw, AudienceSession)
}

// VerifyInvite verifies an invite token and returns the invite id it was
// minted over.
func (c *Codec) VerifyInvite(raw string) (string, error) {
	claims, err := c.verify(raw, AudienceInvite)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

func (c *Codec) verify(raw, audience string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		// Pin the algorithm; never accept whatever the header says.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, ErrInvalidToken
	}
	if !claims.hasAudience(audience) {
		return Claims{}, ErrWrongUse
	}
	if err := claims.ValidateExpiry(time.Now().UTC()); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
