package domain

import (
	"errors"
	"fmt"
	"time"
)

// RoleName is a closed enumeration. Role names arrive from the store and
// from API requests as strings; they must pass ParseRoleName before any
// permission lookup so an unrecognised name is an error at the boundary
// rather than a silently empty permission set.
type RoleName string

const (
	RoleSuperAdmin RoleName = "super_admin"
	RoleAdmin      RoleName = "admin"
	RoleManager    RoleName = "manager"
	RoleMember     RoleName = "member"
	RoleViewer     RoleName = "viewer"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// AllRoles lists every assignable role, super_admin included.
var AllRoles = []RoleName{RoleSuperAdmin, RoleAdmin, RoleManager, RoleMember, RoleViewer}

func ParseRoleName(s string) (RoleName, error) {
	switch RoleName(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleMember, RoleViewer:
		return RoleName(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Permission is an atomic capability identifier gating one protected action.
type Permission string

const (
	PermDonorsRead      Permission = "donors:read"
	PermDonorsWrite     Permission = "donors:write"
	PermPledgesRead     Permission = "pledges:read"
	PermPledgesWrite    Permission = "pledges:write"
	PermPaymentsRead    Permission = "payments:read"
	PermPaymentsWrite   Permission = "payments:write"
	PermCampaignsRead   Permission = "campaigns:read"
	PermCampaignsWrite  Permission = "campaigns:write"
	PermReportsRead     Permission = "reports:read"
	PermMembersManage   Permission = "members:manage"
	PermInvitesManage   Permission = "invites:manage"
	PermOrgManage       Permission = "organization:manage"
)

// allPermissions is the full set granted unconditionally to super-admins.
var allPermissions = []Permission{
	PermDonorsRead, PermDonorsWrite,
	PermPledgesRead, PermPledgesWrite,
	PermPaymentsRead, PermPaymentsWrite,
	PermCampaignsRead, PermCampaignsWrite,
	PermReportsRead,
	PermMembersManage, PermInvitesManage, PermOrgManage,
}

// rolePermissions maps every organization-scoped role to its permission
// bundle. super_admin is deliberately absent: it bypasses the table.
var rolePermissions = map[RoleName][]Permission{
	RoleAdmin: allPermissions,
	RoleManager: {
		PermDonorsRead, PermDonorsWrite,
		PermPledgesRead, PermPledgesWrite,
		PermPaymentsRead, PermPaymentsWrite,
		PermCampaignsRead, PermCampaignsWrite,
		PermReportsRead, PermInvitesManage,
	},
	RoleMember: {
		PermDonorsRead, PermDonorsWrite,
		PermPledgesRead, PermPledgesWrite,
		PermPaymentsRead, PermCampaignsRead,
	},
	RoleViewer: {
		PermDonorsRead, PermPledgesRead, PermPaymentsRead,
		PermCampaignsRead, PermReportsRead,
	},
}

// ValidatePermissionTable checks at startup that every assignable role has
// a permission bundle. A missing entry is a programming error; failing
// here beats silently denying everything at request time.
func ValidatePermissionTable() error {
	for _, r := range AllRoles {
		if r == RoleSuperAdmin {
			continue
		}
		if _, ok := rolePermissions[r]; !ok {
			return fmt.Errorf("domain: role %q has no permission bundle", r)
		}
	}
	return nil
}

// Role is a membership: one named permission bundle assigned to a
// principal within exactly one organization. There is at most one Role
// per (UserID, OrganizationID), enforced by the store.
type Role struct {
	UserID         string
	OrganizationID string
	Name           RoleName
	Suspended      bool
	CreatedAt      time.Time
}

// PermissionSet maps granted permission identifiers to true; absence
// means denied.
type PermissionSet map[Permission]bool

func (ps PermissionSet) Has(p Permission) bool { return ps[p] }

// FullPermissionSet returns every permission; used for super-admins.
func FullPermissionSet() PermissionSet {
	ps := make(PermissionSet, len(allPermissions))
	for _, p := range allPermissions {
		ps[p] = true
	}
	return ps
}

// PermissionsFor merges the permission bundles of every non-suspended
// role in the selected organization. Super-admins receive the full set
// unconditionally, wildcard selection included. A suspended role
// contributes nothing even though its row exists.
func PermissionsFor(roles []Role, sel Selection, isSuperAdmin bool) PermissionSet {
	if isSuperAdmin {
		return FullPermissionSet()
	}

	ps := make(PermissionSet)
	if sel.IsZero() || sel.All {
		return ps
	}
	for _, r := range roles {
		if r.OrganizationID != sel.OrganizationID || r.Suspended {
			continue
		}
		for _, p := range rolePermissions[r.Name] {
			ps[p] = true
		}
	}
	return ps
}
