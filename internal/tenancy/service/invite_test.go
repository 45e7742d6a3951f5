package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/pkg/idx"
	"github.com/causewayhq/causeway/pkg/mailx"
)

func TestInviteCreateRejectsDuplicateActive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	admin := seedPrincipal(t, st, "admin@x.org")

	_, _, err := svc.Create(ctx, "bob@x.org", "member", org.ID, admin.ID)
	require.NoError(t, err)

	// Second identical invite while the first is outstanding.
	_, _, err = svc.Create(ctx, "bob@x.org", "member", org.ID, admin.ID)
	require.ErrorIs(t, err, ErrDuplicateActiveInvite)

	// A different role for the same email is a distinct invite.
	_, _, err = svc.Create(ctx, "bob@x.org", "viewer", org.ID, admin.ID)
	require.NoError(t, err)
}

func TestInviteCreateRejectsSuperAdminRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	_, _, err := svc.Create(ctx, "bob@x.org", "super_admin", org.ID, "someone")
	require.ErrorIs(t, err, ErrInvalidRole)

	_, _, err = svc.Create(ctx, "bob@x.org", "archdruid", org.ID, "someone")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestInviteCreateUnknownOrganization(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	_, _, err := svc.Create(ctx, "bob@x.org", "member", idx.New().String(), "someone")
	require.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestInviteMailFailureKeepsRow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)
	svc.Mailer = failingMailer{}

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	_, _, err := svc.Create(ctx, "carol@x.org", "member", org.ID, "someone")
	require.ErrorIs(t, err, ErrMailSendFailed)

	// The row was persisted despite the mail failure.
	invites, err := st.Invites().ListByOrg(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, invites, 1)

	// Resend on the same row works once mail recovers. It does not
	// re-run the duplicate-active check; this is the same invite.
	svc.Mailer = mailx.LogMailer{}
	result, err := svc.Resend(ctx, invites[0].ID)
	require.NoError(t, err)
	require.False(t, result.Skipped)
}

func TestInviteScenarioRegisterThenReplay(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	invite, token, err := svc.Create(ctx, "alice@x.org", "manager", org.ID, "someone")
	require.NoError(t, err)

	// validate reports a brand-new user.
	v, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice@x.org", v.Email)
	require.Equal(t, domain.RoleManager, v.Role)
	require.Equal(t, "Org One", v.OrganizationName)
	require.False(t, v.UserExists)
	require.False(t, v.AlreadyMember)

	// Registration provisions the principal and assigns the role.
	result, err := svc.RegisterFromInvite(ctx, token, "secret1", "Alice", "Smith")
	require.NoError(t, err)
	require.False(t, result.AlreadyMember)
	require.Equal(t, "alice@x.org", result.Principal.Email)

	role, err := st.Roles().GetByUserAndOrg(ctx, result.Principal.ID, org.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleManager, role.Name)
	require.False(t, role.Suspended)

	stored, err := st.Invites().GetByID(ctx, invite.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AcceptedAt)
	require.Nil(t, stored.CancelledAt)

	// Replaying the same token is terminal.
	_, err = svc.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInviteAlreadyAccepted)
}

func TestInviteAcceptIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")

	_, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	first, err := svc.Accept(ctx, token, bob.ID)
	require.NoError(t, err)
	require.False(t, first.AlreadyMember)

	// The second call resolves by the observable end state: the role
	// row exists, so it reports success.
	second, err := svc.Accept(ctx, token, bob.ID)
	require.NoError(t, err)
	require.True(t, second.AlreadyMember)

	roles, err := st.Roles().ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)

	// A third party replaying the token still gets the terminal error.
	mallory := seedPrincipal(t, st, "mallory2@x.org")
	_, err = svc.Accept(ctx, token, mallory.ID)
	require.ErrorIs(t, err, ErrInviteAlreadyAccepted)
}

func TestInviteAcceptExistingMember(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")
	seedRole(t, st, bob.ID, org.ID, domain.RoleViewer, false)

	_, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	// The role row predates the invite: success, no duplicate write.
	result, err := svc.Accept(ctx, token, bob.ID)
	require.NoError(t, err)
	require.True(t, result.AlreadyMember)

	roles, err := st.Roles().ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, domain.RoleViewer, roles[0].Name)
}

func TestInviteAcceptLostRaceResolvesToMembership(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")

	invite, _, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	// The winning accept flips accepted_at; the loser's CAS must
	// observe zero affected rows, not an error.
	updated, err := st.Invites().MarkAccepted(ctx, invite.ID, time.Now().UTC())
	require.NoError(t, err)
	require.True(t, updated)

	updated, err = st.Invites().MarkAccepted(ctx, invite.ID, time.Now().UTC())
	require.NoError(t, err)
	require.False(t, updated)

	// A caller still holding the pre-acceptance snapshot lost the CAS
	// but the end state it wanted exists, so it reports membership.
	alreadyMember, err := svc.assignRoleAndAccept(ctx, invite, bob.ID)
	require.NoError(t, err)
	require.True(t, alreadyMember)

	roles, err := st.Roles().ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, domain.RoleMember, roles[0].Name)
}

func TestInviteAcceptEmailMismatch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	mallory := seedPrincipal(t, st, "mallory@x.org")

	_, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, token, mallory.ID)
	require.ErrorIs(t, err, ErrEmailMismatch)

	_, err = svc.Accept(ctx, token, "")
	require.ErrorIs(t, err, ErrAuthRequired)
}

func TestInviteAcceptEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")

	_, token, err := svc.Create(ctx, "BOB@X.ORG", "member", org.ID, "someone")
	require.NoError(t, err)

	result, err := svc.Accept(ctx, token, bob.ID)
	require.NoError(t, err)
	require.False(t, result.AlreadyMember)
}

func TestInviteValidateRowExpiryIsAuthoritative(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	// Insert an invite whose row expiry is already in the past, then
	// mint a token whose own exp is still in the future.
	now := time.Now().UTC()
	invite := domain.Invite{
		ID:             idx.New().String(),
		Email:          "dave@x.org",
		OrganizationID: org.ID,
		Role:           domain.RoleMember,
		InvitedBy:      "someone",
		CreatedAt:      now.Add(-8 * 24 * time.Hour),
		ExpiresAt:      now.Add(-time.Hour),
	}
	require.NoError(t, st.Invites().Create(ctx, invite))

	token, err := svc.Tokens.MintInvite(invite.ID, now.Add(time.Hour), now)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInviteExpired)
}

func TestInviteValidateBadToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	_, err := svc.Validate(ctx, "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	// A verifiable token whose invite row has vanished.
	token, err := svc.Tokens.MintInvite(idx.New().String(), time.Now().Add(time.Hour), time.Now())
	require.NoError(t, err)

	_, err = svc.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestInviteCancelProtectsAcceptance(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")

	invite, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, token, bob.ID)
	require.NoError(t, err)

	// cancelled_at must never join accepted_at.
	err = svc.Cancel(ctx, invite.ID)
	require.ErrorIs(t, err, ErrInviteAlreadyAccepted)

	stored, err := st.Invites().GetByID(ctx, invite.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AcceptedAt)
	require.Nil(t, stored.CancelledAt)
}

func TestInviteCancelThenValidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	invite, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, invite.ID))

	// Cancelling again is a no-op success.
	require.NoError(t, svc.Cancel(ctx, invite.ID))

	_, err = svc.Validate(ctx, token)
	require.ErrorIs(t, err, ErrInviteCancelled)

	stored, err := st.Invites().GetByID(ctx, invite.ID)
	require.NoError(t, err)
	require.Nil(t, stored.AcceptedAt)
	require.NotNil(t, stored.CancelledAt)
}

func TestInviteResend(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	bob := seedPrincipal(t, st, "bob@x.org")

	invite, token, err := svc.Create(ctx, "bob@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	t.Run("active invite resends without extending expiry", func(t *testing.T) {
		result, err := svc.Resend(ctx, invite.ID)
		require.NoError(t, err)
		require.False(t, result.Skipped)

		stored, err := st.Invites().GetByID(ctx, invite.ID)
		require.NoError(t, err)
		require.Equal(t, invite.ExpiresAt.Unix(), stored.ExpiresAt.Unix())
	})

	t.Run("accepted invite skips", func(t *testing.T) {
		_, err := svc.Accept(ctx, token, bob.ID)
		require.NoError(t, err)

		result, err := svc.Resend(ctx, invite.ID)
		require.NoError(t, err)
		require.True(t, result.Skipped)
	})

	t.Run("unknown invite errors", func(t *testing.T) {
		_, err := svc.Resend(ctx, idx.New().String())
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestInviteListAndSummary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org1 := seedOrg(t, st, "Org One", domain.SubscriptionActive)
	org2 := seedOrg(t, st, "Org Two", domain.SubscriptionActive)

	_, _, err := svc.Create(ctx, "a@x.org", "member", org1.ID, "someone")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, "b@x.org", "member", org1.ID, "someone")
	require.NoError(t, err)
	_, _, err = svc.Create(ctx, "c@x.org", "viewer", org2.ID, "someone")
	require.NoError(t, err)

	byOrg, err := svc.List(ctx, org1.ID)
	require.NoError(t, err)
	require.Len(t, byOrg, 2)

	all, err := svc.List(ctx, domain.WildcardOrganization)
	require.NoError(t, err)
	require.Len(t, all, 3)

	counts, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, counts[org1.ID])
	require.Equal(t, 1, counts[org2.ID])
}

func TestRegisterFromInviteSetsPasswordOnce(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newTestInviteService(t, st)

	org := seedOrg(t, st, "Org One", domain.SubscriptionActive)

	// Pre-provisioned principal without a password.
	now := time.Now().UTC()
	pending := domain.Principal{
		ID:        idx.New().String(),
		Email:     "erin@x.org",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Principals().Create(ctx, pending))

	_, token, err := svc.Create(ctx, "erin@x.org", "member", org.ID, "someone")
	require.NoError(t, err)

	result, err := svc.RegisterFromInvite(ctx, token, "secret1", "Erin", "Jones")
	require.NoError(t, err)
	require.Equal(t, pending.ID, result.Principal.ID, "no duplicate principal")

	stored, err := st.Principals().GetByID(ctx, pending.ID)
	require.NoError(t, err)
	require.True(t, stored.HasPassword())

	// A principal that already holds a password cannot be hijacked
	// through the registration path.
	_, token2, err := svc.Create(ctx, "erin@x.org", "viewer", org.ID, "someone")
	require.NoError(t, err)

	_, err = svc.RegisterFromInvite(ctx, token2, "evil-password", "X", "Y")
	require.ErrorIs(t, err, ErrEmailMismatch)
}
