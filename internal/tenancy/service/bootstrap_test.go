package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "bootstrap-secret"}

	t.Run("rejects wrong token", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "nope", "root@x.org", "secret1", "Root", "Admin")
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("creates the first super-admin", func(t *testing.T) {
		p, err := svc.Bootstrap(ctx, "bootstrap-secret", "root@x.org", "secret1", "Root", "Admin")
		require.NoError(t, err)
		require.Equal(t, domain.WildcardOrganization, p.ActiveOrgID)

		role, err := st.Roles().GetByUserAndOrg(ctx, p.ID, domain.WildcardOrganization)
		require.NoError(t, err)
		require.Equal(t, domain.RoleSuperAdmin, role.Name)
	})

	t.Run("refuses once any principal exists", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "bootstrap-secret", "other@x.org", "secret1", "O", "T")
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestSessionLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boot := &BootstrapService{Store: st, Token: "bootstrap-secret"}
	root, err := boot.Bootstrap(ctx, "bootstrap-secret", "root@x.org", "secret1", "Root", "Admin")
	require.NoError(t, err)

	codec := newTestCodec(t)
	svc := &SessionService{Store: st, Tokens: codec}

	t.Run("valid credentials mint a verifiable session", func(t *testing.T) {
		token, identity, err := svc.Login(ctx, "root@x.org", "secret1")
		require.NoError(t, err)
		require.True(t, identity.IsSuperAdmin)

		claims, err := codec.VerifySession(token)
		require.NoError(t, err)
		require.Equal(t, root.ID, claims.Subject)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "root@x.org", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = svc.Login(ctx, "ghost@x.org", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unprovisioned principal cannot log in", func(t *testing.T) {
		pending := domain.Principal{ID: "01TESTPENDING", Email: "pending@x.org"}
		require.NoError(t, st.Principals().Create(ctx, pending))

		_, _, err := svc.Login(ctx, "pending@x.org", "anything")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
