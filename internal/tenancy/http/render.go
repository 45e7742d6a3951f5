package http

import (
	"sort"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

// Mapping between domain values and the wire types in tenantsdk.
// Handlers never marshal domain structs directly.

func renderPrincipal(p domain.Principal) tenantsdk.Principal {
	return tenantsdk.Principal{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
	}
}

func renderRole(r domain.Role) tenantsdk.Role {
	return tenantsdk.Role{
		UserID:         r.UserID,
		OrganizationID: r.OrganizationID,
		RoleName:       string(r.Name),
		Suspended:      r.Suspended,
		CreatedAt:      r.CreatedAt,
	}
}

func renderIdentity(id service.Identity) tenantsdk.Identity {
	roles := make([]tenantsdk.Role, 0, len(id.Roles))
	for _, r := range id.Roles {
		roles = append(roles, renderRole(r))
	}

	perms := make([]string, 0, len(id.Permissions))
	for p := range id.Permissions {
		perms = append(perms, string(p))
	}
	sort.Strings(perms)

	return tenantsdk.Identity{
		Principal:          renderPrincipal(id.Principal),
		Roles:              roles,
		IsSuperAdmin:       id.IsSuperAdmin,
		ActiveOrganization: id.Selection.String(),
		Permissions:        perms,
	}
}

func renderDecision(d service.Decision) tenantsdk.AccessDecision {
	return tenantsdk.AccessDecision{
		State:             string(d.State),
		Allowed:           d.Allowed,
		Reason:            d.Reason,
		MissingPermission: string(d.MissingPermission),
	}
}

func renderInvite(i domain.Invite) tenantsdk.Invite {
	return tenantsdk.Invite{
		ID:             i.ID,
		Email:          i.Email,
		OrganizationID: i.OrganizationID,
		RoleName:       string(i.Role),
		InvitedBy:      i.InvitedBy,
		CreatedAt:      i.CreatedAt,
		ExpiresAt:      i.ExpiresAt,
		AcceptedAt:     i.AcceptedAt,
		CancelledAt:    i.CancelledAt,
	}
}

func renderOrganization(o domain.Organization) tenantsdk.Organization {
	return tenantsdk.Organization{
		ID:                 o.ID,
		Name:               o.Name,
		SubscriptionStatus: string(o.SubscriptionStatus),
		CreatedAt:          o.CreatedAt,
	}
}
