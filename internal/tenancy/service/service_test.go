package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store/drivers/sqlite"
	"github.com/causewayhq/causeway/pkg/cryptox"
	"github.com/causewayhq/causeway/pkg/idx"
	"github.com/causewayhq/causeway/pkg/mailx"
	"github.com/causewayhq/causeway/pkg/tokenx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tenancy-service-test-*")
	if err != nil {
		panic(err)
	}

	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	cryptox.ReloadPepper()

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestCodec(t *testing.T) *tokenx.Codec {
	t.Helper()

	codec, err := tokenx.NewCodec(bytes.Repeat([]byte("s"), 32), "causeway-test")
	require.NoError(t, err)
	return codec
}

func newTestInviteService(t *testing.T, st *sqlite.Store) *InviteService {
	t.Helper()

	return &InviteService{
		Store:   st,
		Tokens:  newTestCodec(t),
		Mailer:  mailx.LogMailer{},
		BaseURL: "https://app.causeway.test",
	}
}

func seedOrg(t *testing.T, st *sqlite.Store, name string, status domain.SubscriptionStatus) domain.Organization {
	t.Helper()

	now := time.Now().UTC()
	org := domain.Organization{
		ID:                 idx.New().String(),
		Name:               name,
		SubscriptionStatus: status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, st.Organizations().Create(context.Background(), org))
	return org
}

func seedPrincipal(t *testing.T, st *sqlite.Store, email string) domain.Principal {
	t.Helper()

	now := time.Now().UTC()
	p := domain.Principal{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "argon2:seeded",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Principals().Create(context.Background(), p))
	return p
}

func seedRole(t *testing.T, st *sqlite.Store, userID, orgID string, name domain.RoleName, suspended bool) domain.Role {
	t.Helper()

	r := domain.Role{
		UserID:         userID,
		OrganizationID: orgID,
		Name:           name,
		Suspended:      suspended,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, st.Roles().Create(context.Background(), r))
	return r
}

// failingMailer simulates a mail transport outage.
type failingMailer struct{}

func (failingMailer) SendInvite(ctx context.Context, email mailx.InviteEmail) error {
	return mailx.ErrSendFailed
}
