package tenancy_test

import (
	"testing"

	"github.com/causewayhq/causeway/pkg/tenantsdk"
	"github.com/stretchr/testify/require"
)

// TestBootstrapAndLogin verifies bootstrap creates a super-admin who
// can log in with the wildcard selection active.
func TestBootstrapAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	session := bootstrapService(t, client)

	identity, err := session.Identity(t.Context())
	require.NoError(t, err)
	require.True(t, identity.IsSuperAdmin)
	require.Equal(t, "*", identity.ActiveOrganization)
	require.NotEmpty(t, identity.Permissions, "super-admin should hold the full permission set")
}

// TestBootstrapOnce verifies that bootstrap can only be performed once
// and requires the configured token.
func TestBootstrapOnce(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)

	// Wrong token is refused while the service is still empty.
	_, err := client.Bootstrap(t.Context(), tenantsdk.BootstrapRequest{
		Token:    "wrong-token",
		Email:    rootEmail,
		Password: rootPassword,
	})
	requireAPIError(t, err, tenantsdk.ErrorCodeAccessDenied)

	bootstrapService(t, client)

	// Second bootstrap is refused even with the right token.
	_, err = client.Bootstrap(t.Context(), tenantsdk.BootstrapRequest{
		Token:    bootstrapToken,
		Email:    "second@causeway.test",
		Password: "SecondPassword123!",
	})
	requireAPIError(t, err, tenantsdk.ErrorCodeAlreadyBootstrapped)
}

// TestLoginRejectsBadCredentials verifies that unknown emails and wrong
// passwords are indistinguishable on the wire.
func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	bootstrapService(t, client)

	_, err := client.Login(t.Context(), rootEmail, "wrong-password")
	requireAPIError(t, err, tenantsdk.ErrorCodeInvalidCredentials)

	_, err = client.Login(t.Context(), "nobody@causeway.test", rootPassword)
	requireAPIError(t, err, tenantsdk.ErrorCodeInvalidCredentials)
}

// TestHealthEndpoints verifies the probes respond once the container
// reports ready.
func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := tenantsdk.NewClient(baseURL)
	require.NoError(t, client.Healthy(t.Context()))
}
