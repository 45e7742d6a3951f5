package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/pkg/idx"
)

func TestIdentityResolve(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &IdentityService{Store: st}

	org1 := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	org2 := seedOrg(t, st, "Org Two", domain.SubscriptionActive)

	t.Run("unknown principal maps to auth required", func(t *testing.T) {
		_, err := svc.Resolve(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrAuthRequired)

		_, err = svc.Resolve(ctx, "")
		require.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("defaults to first role's organization", func(t *testing.T) {
		p := seedPrincipal(t, st, "one@x.org")
		seedRole(t, st, p.ID, org1.ID, domain.RoleMember, false)
		seedRole(t, st, p.ID, org2.ID, domain.RoleViewer, false)

		id, err := svc.Resolve(ctx, p.ID)
		require.NoError(t, err)
		require.False(t, id.IsSuperAdmin)
		require.Len(t, id.Roles, 2)
		require.Equal(t, org1.ID, id.Selection.OrganizationID)
		require.True(t, id.Permissions.Has(domain.PermDonorsRead))
	})

	t.Run("persisted selection survives while a role backs it", func(t *testing.T) {
		p := seedPrincipal(t, st, "two@x.org")
		seedRole(t, st, p.ID, org1.ID, domain.RoleMember, false)
		seedRole(t, st, p.ID, org2.ID, domain.RoleViewer, false)

		_, applied, err := svc.SetActive(ctx, p.ID, org2.ID)
		require.NoError(t, err)
		require.True(t, applied)

		id, err := svc.Resolve(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, org2.ID, id.Selection.OrganizationID)
	})

	t.Run("stale persisted selection heals on resolve", func(t *testing.T) {
		p := seedPrincipal(t, st, "three@x.org")
		seedRole(t, st, p.ID, org1.ID, domain.RoleMember, false)

		// Point the persisted selection at an organization the
		// principal has no role in.
		require.NoError(t, st.Principals().UpdateActiveOrg(ctx, p.ID, org2.ID))

		id, err := svc.Resolve(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, org1.ID, id.Selection.OrganizationID)

		stored, err := st.Principals().GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, org1.ID, stored.ActiveOrgID)
	})

	t.Run("no roles means no selection", func(t *testing.T) {
		p := seedPrincipal(t, st, "four@x.org")

		id, err := svc.Resolve(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, id.Selection.IsZero())
		require.Empty(t, id.Permissions)
	})

	t.Run("super-admin defaults to wildcard", func(t *testing.T) {
		p := seedPrincipal(t, st, "root@x.org")
		seedRole(t, st, p.ID, domain.WildcardOrganization, domain.RoleSuperAdmin, false)

		id, err := svc.Resolve(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, id.IsSuperAdmin)
		require.True(t, id.Selection.All)
		require.True(t, id.Permissions.Has(domain.PermOrgManage))
	})
}

func TestIdentitySetActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &IdentityService{Store: st}

	org1 := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	org2 := seedOrg(t, st, "Org Two", domain.SubscriptionActive)

	t.Run("invalid id retains previous selection", func(t *testing.T) {
		p := seedPrincipal(t, st, "five@x.org")
		seedRole(t, st, p.ID, org1.ID, domain.RoleMember, false)

		id, applied, err := svc.SetActive(ctx, p.ID, org2.ID)
		require.NoError(t, err)
		require.False(t, applied)
		require.Equal(t, org1.ID, id.Selection.OrganizationID)
	})

	t.Run("super-admin may select any organization or the wildcard", func(t *testing.T) {
		p := seedPrincipal(t, st, "root2@x.org")
		seedRole(t, st, p.ID, domain.WildcardOrganization, domain.RoleSuperAdmin, false)

		id, applied, err := svc.SetActive(ctx, p.ID, org2.ID)
		require.NoError(t, err)
		require.True(t, applied)
		require.Equal(t, org2.ID, id.Selection.OrganizationID)

		id, applied, err = svc.SetActive(ctx, p.ID, domain.WildcardOrganization)
		require.NoError(t, err)
		require.True(t, applied)
		require.True(t, id.Selection.All)

		// A nonexistent organization is still rejected.
		_, applied, err = svc.SetActive(ctx, p.ID, idx.New().String())
		require.NoError(t, err)
		require.False(t, applied)
	})
}
