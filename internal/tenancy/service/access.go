package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/slogx"
)

// DenyMode selects how a missing permission is rendered: an inline
// block message, or a redirect to a configured location.
type DenyMode string

const (
	DenyModeMessage  DenyMode = "message"
	DenyModeRedirect DenyMode = "redirect"
)

var ErrUnknownDenyMode = errors.New("unknown deny mode")

func ParseDenyMode(s string) (DenyMode, error) {
	switch DenyMode(s) {
	case DenyModeMessage, DenyModeRedirect:
		return DenyMode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDenyMode, s)
}

// Decision is the outcome of a guard evaluation. Blocked states are
// ordinary values, never errors; callers render Reason and offer a
// sign-out affordance.
type Decision struct {
	State   domain.AccessState
	Allowed bool
	Reason  string

	// MissingPermission is set when a permission-scoped check failed on
	// an otherwise OK state.
	MissingPermission domain.Permission
}

func allow(state domain.AccessState) Decision {
	return Decision{State: state, Allowed: true, Reason: state.Reason()}
}

func block(state domain.AccessState) Decision {
	return Decision{State: state, Allowed: false, Reason: state.Reason()}
}

// AccessService is the single canonical guard. Every protected action
// funnels through Evaluate or Require; there are no other copies of
// this state machine.
type AccessService struct {
	Store    store.Store
	Identity *IdentityService
}

// Evaluate runs the guard state machine for a principal and an
// organization selection. The transition order is fixed:
// session, super-admin bypass, selection present, organization exists,
// subscription active, role exists, role not suspended.
func (s *AccessService) Evaluate(ctx context.Context, principalID string, sel domain.Selection) (Decision, error) {
	log := slogx.FromContext(ctx)

	// 1. No principal means no session.
	if principalID == "" {
		return block(domain.AccessNoSession), nil
	}

	identity, err := s.Identity.Resolve(ctx, principalID)
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return block(domain.AccessNoSession), nil
		}
		return Decision{State: domain.AccessLoading}, err
	}

	return s.evaluateIdentity(ctx, log, identity, sel)
}

func (s *AccessService) evaluateIdentity(
	ctx context.Context,
	log *slog.Logger,
	identity Identity,
	sel domain.Selection,
) (Decision, error) {
	// 2. Super-admins bypass every organization-scoped check.
	if identity.IsSuperAdmin {
		return allow(domain.AccessSuperAdminOK), nil
	}

	// 3. A selection must exist.
	if sel.IsZero() || sel.All {
		return block(domain.AccessNoOrgSelected), nil
	}

	// 4. The selected organization must exist.
	org, err := s.Store.Organizations().GetByID(ctx, sel.OrganizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return block(domain.AccessOrgNotFound), nil
		}
		log.Error("failed to fetch organization", slog.Any("error", err))
		return Decision{State: domain.AccessLoading}, err
	}

	// 5. An inactive subscription blocks every principal in the
	// organization, independent of role.
	if !org.IsActive() {
		return block(domain.AccessOrgInactive), nil
	}

	// 6. The principal needs a role row for the organization.
	role, ok := identity.RoleIn(sel.OrganizationID)
	if !ok {
		return block(domain.AccessNoRoleForOrg), nil
	}

	// 7. The role must not be suspended.
	if role.Suspended {
		return block(domain.AccessRoleSuspended), nil
	}

	return allow(domain.AccessOK), nil
}

// Require runs Evaluate and, on an allowed state, additionally checks
// the permission. Super-admins hold the full set so the check cannot
// fail for them.
func (s *AccessService) Require(
	ctx context.Context,
	principalID string,
	sel domain.Selection,
	permission domain.Permission,
) (Decision, error) {
	log := slogx.FromContext(ctx)

	if principalID == "" {
		return block(domain.AccessNoSession), nil
	}

	identity, err := s.Identity.Resolve(ctx, principalID)
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return block(domain.AccessNoSession), nil
		}
		return Decision{State: domain.AccessLoading}, err
	}

	decision, err := s.evaluateIdentity(ctx, log, identity, sel)
	if err != nil || !decision.Allowed {
		return decision, err
	}

	perms := domain.PermissionsFor(identity.Roles, sel, identity.IsSuperAdmin)
	if !perms.Has(permission) {
		log.Warn("permission denied",
			slog.String("principal_id", principalID),
			slog.String("selection", sel.String()),
			slog.String("permission", string(permission)),
		)
		d := block(decision.State)
		d.Reason = fmt.Sprintf("missing permission %q", permission)
		d.MissingPermission = permission
		return d, nil
	}

	return decision, nil
}
