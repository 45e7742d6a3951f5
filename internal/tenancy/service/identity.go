package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/slogx"
)

var ErrAuthRequired = errors.New("authentication required")

// Identity is the fully resolved view of an authenticated principal:
// the principal row, every role assignment, the validated organization
// selection and the effective permission set for that selection.
type Identity struct {
	Principal    domain.Principal
	Roles        []domain.Role
	IsSuperAdmin bool
	Selection    domain.Selection
	Permissions  domain.PermissionSet
}

// RoleIn returns the role row for the given organization, if any.
func (id Identity) RoleIn(orgID string) (domain.Role, bool) {
	for _, r := range id.Roles {
		if r.OrganizationID == orgID {
			return r, true
		}
	}
	return domain.Role{}, false
}

type IdentityService struct {
	Store store.Store
}

// Resolve loads the principal and all of its role assignments, then
// derives the active organization selection: a previously persisted
// selection is reused if it is still backed by a role, otherwise the
// first role's organization wins. Super-admins default to the
// wildcard. The derived selection is persisted back when it differs
// from the stored one, so stale selections heal on the next resolve.
func (s *IdentityService) Resolve(ctx context.Context, principalID string) (Identity, error) {
	log := slogx.FromContext(ctx)

	if principalID == "" {
		return Identity{}, ErrAuthRequired
	}

	// 1. Load the principal.
	principal, err := s.Store.Principals().GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("session references unknown principal",
				slog.String("principal_id", principalID),
			)
			return Identity{}, ErrAuthRequired
		}
		log.Error("failed to fetch principal", slog.Any("error", err))
		return Identity{}, err
	}

	// 2. Load every role row.
	roles, err := s.Store.Roles().ListByUser(ctx, principalID)
	if err != nil {
		log.Error("failed to fetch roles", slog.Any("error", err))
		return Identity{}, err
	}

	isSuperAdmin := false
	for _, r := range roles {
		if r.Name == domain.RoleSuperAdmin {
			isSuperAdmin = true
			break
		}
	}

	// 3. Derive the selection and persist it if it changed.
	selection := deriveSelection(principal, roles, isSuperAdmin)
	if selection.String() != principal.ActiveOrgID {
		if err := s.Store.Principals().UpdateActiveOrg(ctx, principalID, selection.String()); err != nil {
			log.Error("failed to persist organization selection", slog.Any("error", err))
			return Identity{}, err
		}
		principal.ActiveOrgID = selection.String()
	}

	return Identity{
		Principal:    principal,
		Roles:        roles,
		IsSuperAdmin: isSuperAdmin,
		Selection:    selection,
		Permissions:  domain.PermissionsFor(roles, selection, isSuperAdmin),
	}, nil
}

// SetActive validates and commits a new organization selection. An id
// the principal has no role in is ignored: the previous selection is
// retained and applied reports false. Super-admins may select any
// existing organization or the wildcard.
func (s *IdentityService) SetActive(ctx context.Context, principalID, orgID string) (Identity, bool, error) {
	log := slogx.FromContext(ctx)

	identity, err := s.Resolve(ctx, principalID)
	if err != nil {
		return Identity{}, false, err
	}

	requested := domain.SelectOrganization(orgID)

	valid := false
	switch {
	case identity.IsSuperAdmin && requested.All:
		valid = true
	case identity.IsSuperAdmin:
		_, err := s.Store.Organizations().GetByID(ctx, requested.OrganizationID)
		if err == nil {
			valid = true
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch organization", slog.Any("error", err))
			return Identity{}, false, err
		}
	default:
		_, valid = identity.RoleIn(requested.OrganizationID)
	}

	if !valid || requested.IsZero() {
		log.Warn("ignored invalid organization selection",
			slog.String("principal_id", principalID),
			slog.String("requested", orgID),
			slog.String("retained", identity.Selection.String()),
		)
		return identity, false, nil
	}

	if err := s.Store.Principals().UpdateActiveOrg(ctx, principalID, requested.String()); err != nil {
		log.Error("failed to persist organization selection", slog.Any("error", err))
		return Identity{}, false, err
	}

	identity.Principal.ActiveOrgID = requested.String()
	identity.Selection = requested
	identity.Permissions = domain.PermissionsFor(identity.Roles, requested, identity.IsSuperAdmin)

	log.Debug("organization selection updated",
		slog.String("principal_id", principalID),
		slog.String("selection", requested.String()),
	)

	return identity, true, nil
}

// deriveSelection applies the selection algorithm: reuse a persisted
// selection while a role still backs it, otherwise fall back to the
// first role's organization. Super-admins keep any persisted value and
// default to the wildcard.
func deriveSelection(p domain.Principal, roles []domain.Role, isSuperAdmin bool) domain.Selection {
	persisted := domain.SelectOrganization(p.ActiveOrgID)

	if isSuperAdmin {
		if p.ActiveOrgID == "" {
			return domain.SelectionAll
		}
		return persisted
	}

	if !persisted.IsZero() && !persisted.All {
		for _, r := range roles {
			if r.OrganizationID == persisted.OrganizationID {
				return persisted
			}
		}
	}

	for _, r := range roles {
		if r.OrganizationID != domain.WildcardOrganization {
			return domain.SelectOrganization(r.OrganizationID)
		}
	}

	return domain.Selection{}
}
