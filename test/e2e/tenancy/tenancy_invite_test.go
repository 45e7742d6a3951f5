package tenancy_test

import (
	"testing"

	"github.com/causewayhq/causeway/pkg/tenantsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteFullFlow walks the happy path: invite, validate, register,
// log in, and verify the granted role shows up on the identity.
func TestInviteFullFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	member := inviteAndRegister(t, admin, client, org.ID, "manager@causeway.test", "manager", "ManagerPass123!")

	identity, err := member.Identity(t.Context())
	require.NoError(t, err)
	require.False(t, identity.IsSuperAdmin)
	require.Equal(t, org.ID, identity.ActiveOrganization)
	require.Len(t, identity.Roles, 1)
	require.Equal(t, "manager", identity.Roles[0].RoleName)
	require.Contains(t, identity.Permissions, "donors:read")
}

// TestInviteDuplicateRejected verifies a second active invite for the
// same email, organization and role conflicts.
func TestInviteDuplicateRejected(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	req := tenantsdk.InviteCreateRequest{
		Email:          "dupe@causeway.test",
		RoleName:       "viewer",
		OrganizationID: org.ID,
	}

	_, err := admin.CreateInvite(t.Context(), req)
	require.NoError(t, err)

	_, err = admin.CreateInvite(t.Context(), req)
	requireAPIError(t, err, tenantsdk.ErrorCodeDuplicateActiveInvite)
}

// TestInviteCancelThenValidate verifies cancellation is terminal for
// the token and idempotent for the caller.
func TestInviteCancelThenValidate(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	created, err := admin.CreateInvite(t.Context(), tenantsdk.InviteCreateRequest{
		Email:          "cancelme@causeway.test",
		RoleName:       "viewer",
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	require.NoError(t, admin.CancelInvite(t.Context(), created.Invite.ID))
	// Cancelling again is a no-op.
	require.NoError(t, admin.CancelInvite(t.Context(), created.Invite.ID))

	_, err = client.ValidateInvite(t.Context(), created.Token)
	requireAPIError(t, err, tenantsdk.ErrorCodeInviteCancelled)

	// A cancelled invite cannot be registered against either.
	_, err = client.RegisterFromInvite(t.Context(), tenantsdk.InviteRegisterRequest{
		Token:    created.Token,
		Password: "SomePassword123!",
	})
	requireAPIError(t, err, tenantsdk.ErrorCodeInviteCancelled)
}

// TestInviteAcceptReplay verifies the accepted invite is terminal for
// validation but replay-safe for the accepting principal.
func TestInviteAcceptReplay(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	created, err := admin.CreateInvite(t.Context(), tenantsdk.InviteCreateRequest{
		Email:          "replay@causeway.test",
		RoleName:       "member",
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	_, err = client.RegisterFromInvite(t.Context(), tenantsdk.InviteRegisterRequest{
		Token:    created.Token,
		Password: "ReplayPass123!",
	})
	require.NoError(t, err)

	// Validation reports the terminal state.
	_, err = client.ValidateInvite(t.Context(), created.Token)
	requireAPIError(t, err, tenantsdk.ErrorCodeInviteAccepted)

	// Accepting again as the same principal succeeds idempotently.
	session, err := client.Login(t.Context(), "replay@causeway.test", "ReplayPass123!")
	require.NoError(t, err)

	accepted, err := session.AcceptInvite(t.Context(), created.Token)
	require.NoError(t, err)
	require.True(t, accepted.AlreadyMember)

	// Cancelling an accepted invite is refused.
	err = admin.CancelInvite(t.Context(), created.Invite.ID)
	requireAPIError(t, err, tenantsdk.ErrorCodeInviteAccepted)
}

// TestInviteEmailMismatch verifies an authenticated principal cannot
// accept an invite issued for someone else.
func TestInviteEmailMismatch(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	mallory := inviteAndRegister(t, admin, client, org.ID, "mallory@causeway.test", "viewer", "MalloryPass123!")

	created, err := admin.CreateInvite(t.Context(), tenantsdk.InviteCreateRequest{
		Email:          "alice@causeway.test",
		RoleName:       "manager",
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	_, err = mallory.AcceptInvite(t.Context(), created.Token)
	requireAPIError(t, err, tenantsdk.ErrorCodeEmailMismatch)
}

// TestInviteResendAndListing covers the admin surface: listing per
// organization, the wildcard listing, the summary, and resend skipping
// terminal invites.
func TestInviteResendAndListing(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")
	other := createOrganization(t, admin, "North Shore Fund")

	created, err := admin.CreateInvite(t.Context(), tenantsdk.InviteCreateRequest{
		Email:          "pending@causeway.test",
		RoleName:       "viewer",
		OrganizationID: org.ID,
	})
	require.NoError(t, err)

	_, err = admin.CreateInvite(t.Context(), tenantsdk.InviteCreateRequest{
		Email:          "pending@causeway.test",
		RoleName:       "viewer",
		OrganizationID: other.ID,
	})
	require.NoError(t, err)

	list, err := admin.ListInvites(t.Context(), org.ID)
	require.NoError(t, err)
	require.Len(t, list.Invites, 1)

	all, err := admin.ListInvites(t.Context(), "*")
	require.NoError(t, err)
	require.Len(t, all.Invites, 2)

	summary, err := admin.InviteSummary(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, summary.Counts[org.ID])
	require.Equal(t, 1, summary.Counts[other.ID])

	// Pending invite resends; the expiry must not move.
	resent, err := admin.ResendInvite(t.Context(), created.Invite.ID)
	require.NoError(t, err)
	require.False(t, resent.Skipped)

	after, err := admin.ListInvites(t.Context(), org.ID)
	require.NoError(t, err)
	require.Equal(t, created.Invite.ExpiresAt.Unix(), after.Invites[0].ExpiresAt.Unix())

	// A cancelled invite skips instead of failing.
	require.NoError(t, admin.CancelInvite(t.Context(), created.Invite.ID))
	resent, err = admin.ResendInvite(t.Context(), created.Invite.ID)
	require.NoError(t, err)
	require.True(t, resent.Skipped)
}

// TestInviteRequiresManagePermission verifies a viewer cannot issue
// invites while a manager can.
func TestInviteRequiresManagePermission(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	admin := bootstrapService(t, client)
	org := createOrganization(t, admin, "Harbor Trust")

	viewer := inviteAndRegister(t, admin, client, org.ID, "viewer@causeway.test", "viewer", "ViewerPass123!")
	manager := inviteAndRegister(t, admin, client, org.ID, "boss@causeway.test", "manager", "ManagerPass123!")

	req := tenantsdk.InviteCreateRequest{
		Email:          "newbie@causeway.test",
		RoleName:       "member",
		OrganizationID: org.ID,
	}

	_, err := viewer.CreateInvite(t.Context(), req)
	requireAPIError(t, err, tenantsdk.ErrorCodeAccessDenied)

	_, err = manager.CreateInvite(t.Context(), req)
	require.NoError(t, err)
}
