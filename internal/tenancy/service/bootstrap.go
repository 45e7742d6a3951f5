package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/cryptox"
	"github.com/causewayhq/causeway/pkg/idx"
	"github.com/causewayhq/causeway/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapInvalid      = errors.New("invalid bootstrap request")
)

// BootstrapService creates the first super-admin principal. It works
// exactly once: as soon as any principal exists, bootstrap refuses.
type BootstrapService struct {
	Store store.Store
	Token string // pre-configured bootstrap token
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Principals().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	password string,
	firstName string,
	lastName string,
) (domain.Principal, error) {
	log := slogx.FromContext(ctx)

	// 1. Refuse once any principal exists.
	bootstrapped, err := s.IsBootstrapped(ctx)
	if err != nil {
		log.Error("failed to check bootstrap state", slog.Any("error", err))
		return domain.Principal{}, err
	}
	if bootstrapped {
		log.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.Principal{}, ErrBootstrapAlready
	}

	// 2. Validate the provided token.
	if s.Token == "" || token != s.Token {
		log.Warn("unauthorized bootstrap attempt")
		return domain.Principal{}, ErrBootstrapUnauthorized
	}

	if email == "" || password == "" {
		return domain.Principal{}, ErrBootstrapInvalid
	}

	// 3. Hash the password.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Principal{}, err
	}

	now := time.Now().UTC()
	principal := domain.Principal{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		ActiveOrgID:  domain.WildcardOrganization,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Create the principal and its super_admin role atomically. The
	// role row carries the wildcard organization; super_admin belongs
	// to no single organization.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Principals().Create(ctx, principal); err != nil {
			log.Error("failed to create principal", slog.Any("error", err))
			return err
		}
		role := domain.Role{
			UserID:         principal.ID,
			OrganizationID: domain.WildcardOrganization,
			Name:           domain.RoleSuperAdmin,
			CreatedAt:      now,
		}
		if err := tx.Roles().Create(ctx, role); err != nil {
			log.Error("failed to create super_admin role", slog.Any("error", err))
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Principal{}, err
	}

	log.Info("system bootstrapped",
		slog.String("principal_id", principal.ID),
	)

	return principal, nil
}
