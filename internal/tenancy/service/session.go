package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/cryptox"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tokenx"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type SessionService struct {
	Store      store.Store
	Tokens     *tokenx.Codec
	SessionTTL time.Duration
}

// Login verifies the password and mints a session bearer token. The
// same error covers an unknown email and a wrong password so the
// endpoint does not become an account oracle.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, Identity, error) {
	log := slogx.FromContext(ctx)

	if email == "" || password == "" {
		return "", Identity{}, ErrInvalidCredentials
	}

	// 1. Look the principal up by email.
	principal, err := s.Store.Principals().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempt for unknown email")
			return "", Identity{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch principal", slog.Any("error", err))
		return "", Identity{}, err
	}

	// 2. A principal provisioned ahead of its first login has no
	// password and cannot log in yet.
	if !principal.HasPassword() {
		log.Warn("login attempt for unprovisioned principal",
			slog.String("principal_id", principal.ID),
		)
		return "", Identity{}, ErrInvalidCredentials
	}

	// 3. Verify the password.
	if err := cryptox.VerifyPassword(password, principal.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login attempt with wrong password",
				slog.String("principal_id", principal.ID),
			)
			return "", Identity{}, ErrInvalidCredentials
		}
		log.Error("password verification failed", slog.Any("error", err))
		return "", Identity{}, err
	}

	// 4. Resolve roles and selection for the response body.
	resolver := &IdentityService{Store: s.Store}
	identity, err := resolver.Resolve(ctx, principal.ID)
	if err != nil {
		return "", Identity{}, err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = tokenx.DefaultSessionTTL
	}

	// 5. Mint the bearer token.
	token, err := s.Tokens.MintSession(principal.ID, principal.Email, ttl, time.Now())
	if err != nil {
		log.Error("failed to mint session token", slog.Any("error", err))
		return "", Identity{}, err
	}

	log.Info("session issued",
		slog.String("principal_id", principal.ID),
		slog.Duration("ttl", ttl),
	)

	return token, identity, nil
}
