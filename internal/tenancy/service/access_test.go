package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/pkg/idx"
)

func TestAccessGuardStates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccessService{Store: st, Identity: &IdentityService{Store: st}}

	active := seedOrg(t, st, "Active Org", domain.SubscriptionActive)
	inactive := seedOrg(t, st, "Inactive Org", domain.SubscriptionInactive)

	member := seedPrincipal(t, st, "member@x.org")
	seedRole(t, st, member.ID, active.ID, domain.RoleMember, false)

	suspended := seedPrincipal(t, st, "suspended@x.org")
	seedRole(t, st, suspended.ID, active.ID, domain.RoleManager, true)

	inactiveMember := seedPrincipal(t, st, "inactive-member@x.org")
	seedRole(t, st, inactiveMember.ID, inactive.ID, domain.RoleAdmin, false)

	t.Run("no session", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, "", domain.SelectOrganization(active.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessNoSession, d.State)
		require.False(t, d.Allowed)

		d, err = svc.Evaluate(ctx, idx.New().String(), domain.SelectOrganization(active.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessNoSession, d.State)
	})

	t.Run("ok", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, member.ID, domain.SelectOrganization(active.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessOK, d.State)
		require.True(t, d.Allowed)
		require.Empty(t, d.Reason)
	})

	t.Run("no org selected", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, member.ID, domain.Selection{})
		require.NoError(t, err)
		require.Equal(t, domain.AccessNoOrgSelected, d.State)
		require.False(t, d.Allowed)
	})

	t.Run("org not found", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, member.ID, domain.SelectOrganization(idx.New().String()))
		require.NoError(t, err)
		require.Equal(t, domain.AccessOrgNotFound, d.State)
	})

	t.Run("org inactive blocks regardless of role", func(t *testing.T) {
		// Scenario: valid, non-suspended admin role in an inactive org.
		d, err := svc.Evaluate(ctx, inactiveMember.ID, domain.SelectOrganization(inactive.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessOrgInactive, d.State)
		require.False(t, d.Allowed)
		require.NotEmpty(t, d.Reason)
	})

	t.Run("no role for org", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, inactiveMember.ID, domain.SelectOrganization(active.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessNoRoleForOrg, d.State)
	})

	t.Run("role suspended", func(t *testing.T) {
		d, err := svc.Evaluate(ctx, suspended.ID, domain.SelectOrganization(active.ID))
		require.NoError(t, err)
		require.Equal(t, domain.AccessRoleSuspended, d.State)
	})
}

func TestAccessGuardSuperAdminBypass(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccessService{Store: st, Identity: &IdentityService{Store: st}}

	inactive := seedOrg(t, st, "Inactive Org", domain.SubscriptionInactive)

	root := seedPrincipal(t, st, "root@x.org")
	seedRole(t, st, root.ID, domain.WildcardOrganization, domain.RoleSuperAdmin, false)

	// Bypass holds regardless of organization id, status or role state.
	for _, sel := range []domain.Selection{
		domain.SelectionAll,
		domain.SelectOrganization(inactive.ID),
		domain.SelectOrganization(idx.New().String()),
		{},
	} {
		d, err := svc.Evaluate(ctx, root.ID, sel)
		require.NoError(t, err)
		require.Equal(t, domain.AccessSuperAdminOK, d.State, "selection %v", sel)
		require.True(t, d.Allowed)
	}
}

func TestAccessRequirePermission(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AccessService{Store: st, Identity: &IdentityService{Store: st}}

	org := seedOrg(t, st, "Org", domain.SubscriptionActive)
	viewer := seedPrincipal(t, st, "viewer@x.org")
	seedRole(t, st, viewer.ID, org.ID, domain.RoleViewer, false)

	sel := domain.SelectOrganization(org.ID)

	t.Run("held permission passes", func(t *testing.T) {
		d, err := svc.Require(ctx, viewer.ID, sel, domain.PermDonorsRead)
		require.NoError(t, err)
		require.True(t, d.Allowed)
	})

	t.Run("missing permission blocks on an otherwise OK state", func(t *testing.T) {
		d, err := svc.Require(ctx, viewer.ID, sel, domain.PermOrgManage)
		require.NoError(t, err)
		require.False(t, d.Allowed)
		require.Equal(t, domain.PermOrgManage, d.MissingPermission)
		require.NotEmpty(t, d.Reason)
	})

	t.Run("super-admin holds everything", func(t *testing.T) {
		root := seedPrincipal(t, st, "root@x.org")
		seedRole(t, st, root.ID, domain.WildcardOrganization, domain.RoleSuperAdmin, false)

		d, err := svc.Require(ctx, root.ID, domain.SelectionAll, domain.PermOrgManage)
		require.NoError(t, err)
		require.True(t, d.Allowed)
	})
}

func TestPermissionMonotonicity(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	identity := &IdentityService{Store: st}

	org1 := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	org2 := seedOrg(t, st, "Org Two", domain.SubscriptionActive)

	p := seedPrincipal(t, st, "multi@x.org")
	seedRole(t, st, p.ID, org1.ID, domain.RoleManager, false)
	seedRole(t, st, p.ID, org2.ID, domain.RoleAdmin, true) // suspended

	// Selecting org1 yields the manager bundle.
	id, applied, err := identity.SetActive(ctx, p.ID, org1.ID)
	require.NoError(t, err)
	require.True(t, applied)
	require.True(t, id.Permissions.Has(domain.PermDonorsRead))

	// Selecting org2 yields an empty set: the only role there is
	// suspended, even though its row exists.
	id, applied, err = identity.SetActive(ctx, p.ID, org2.ID)
	require.NoError(t, err)
	require.True(t, applied)
	require.Empty(t, id.Permissions)
}
