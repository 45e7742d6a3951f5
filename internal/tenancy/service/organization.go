package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/idx"
	"github.com/causewayhq/causeway/pkg/slogx"
)

var (
	ErrInvalidOrganization = errors.New("invalid organization")
	ErrPrincipalNotFound   = errors.New("principal not found")
	ErrAlreadyMember       = errors.New("principal already has a role in this organization")
)

type OrganizationService struct {
	Store store.Store
}

// Create inserts a new organization, active by default.
func (s *OrganizationService) Create(ctx context.Context, name string) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	if name == "" {
		return domain.Organization{}, ErrInvalidOrganization
	}

	now := time.Now().UTC()
	org := domain.Organization{
		ID:                 idx.New().String(),
		Name:               name,
		SubscriptionStatus: domain.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Store.Organizations().Create(ctx, org); err != nil {
		log.Error("failed to create organization", slog.Any("error", err))
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("organization_id", org.ID),
		slog.String("name", name),
	)

	return org, nil
}

func (s *OrganizationService) Get(ctx context.Context, orgID string) (domain.Organization, error) {
	org, err := s.Store.Organizations().GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrOrganizationNotFound
		}
		return domain.Organization{}, err
	}
	return org, nil
}

// ListFor returns the organizations visible to an identity: all of
// them for a super-admin, otherwise the ones the principal holds a
// role in.
func (s *OrganizationService) ListFor(ctx context.Context, identity Identity) ([]domain.Organization, error) {
	log := slogx.FromContext(ctx)

	all, err := s.Store.Organizations().List(ctx)
	if err != nil {
		log.Error("failed to list organizations", slog.Any("error", err))
		return nil, err
	}
	if identity.IsSuperAdmin {
		return all, nil
	}

	member := make(map[string]bool, len(identity.Roles))
	for _, r := range identity.Roles {
		member[r.OrganizationID] = true
	}

	visible := make([]domain.Organization, 0, len(member))
	for _, org := range all {
		if member[org.ID] {
			visible = append(visible, org)
		}
	}
	return visible, nil
}

// UpdateSubscription flips the subscription status. Deactivation
// blocks every principal in the organization on their next guard
// evaluation.
func (s *OrganizationService) UpdateSubscription(ctx context.Context, orgID string, status domain.SubscriptionStatus) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	org, err := s.Get(ctx, orgID)
	if err != nil {
		return domain.Organization{}, err
	}

	if err := s.Store.Organizations().UpdateSubscriptionStatus(ctx, orgID, status); err != nil {
		log.Error("failed to update subscription status", slog.Any("error", err))
		return domain.Organization{}, err
	}
	org.SubscriptionStatus = status

	log.Info("subscription status updated",
		slog.String("organization_id", orgID),
		slog.String("status", string(status)),
	)

	return org, nil
}

// Members returns every role row in the organization.
func (s *OrganizationService) Members(ctx context.Context, orgID string) ([]domain.Role, error) {
	if _, err := s.Get(ctx, orgID); err != nil {
		return nil, err
	}
	return s.Store.Roles().ListByOrg(ctx, orgID)
}

// AddMember assigns a role directly, the administrative alternative
// to the invite flow. The principal is addressed by email and must
// already exist.
func (s *OrganizationService) AddMember(ctx context.Context, orgID, email string, roleName string) (domain.Role, error) {
	log := slogx.FromContext(ctx)

	role, err := domain.ParseRoleName(roleName)
	if err != nil || role == domain.RoleSuperAdmin {
		return domain.Role{}, ErrInvalidRole
	}

	if _, err := s.Get(ctx, orgID); err != nil {
		return domain.Role{}, err
	}

	principal, err := s.Store.Principals().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Role{}, ErrPrincipalNotFound
		}
		log.Error("failed to fetch principal", slog.Any("error", err))
		return domain.Role{}, err
	}

	row := domain.Role{
		UserID:         principal.ID,
		OrganizationID: orgID,
		Name:           role,
		Suspended:      false,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Store.Roles().Create(ctx, row); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Role{}, ErrAlreadyMember
		}
		log.Error("failed to create role", slog.Any("error", err))
		return domain.Role{}, err
	}

	log.Info("member added",
		slog.String("organization_id", orgID),
		slog.String("principal_id", principal.ID),
		slog.String("role", string(role)),
	)

	return row, nil
}

// SetMemberSuspended flips the suspended flag on a membership.
func (s *OrganizationService) SetMemberSuspended(ctx context.Context, orgID, userID string, suspended bool) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Roles().GetByUserAndOrg(ctx, userID, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPrincipalNotFound
		}
		return err
	}

	if err := s.Store.Roles().SetSuspended(ctx, userID, orgID, suspended); err != nil {
		log.Error("failed to update suspension", slog.Any("error", err))
		return err
	}

	log.Info("membership suspension updated",
		slog.String("organization_id", orgID),
		slog.String("principal_id", userID),
		slog.Bool("suspended", suspended),
	)

	return nil
}
