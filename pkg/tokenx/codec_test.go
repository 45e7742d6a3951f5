package tokenx

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	secret := []byte("0123456789abcdef0123456789abcdef")
	codec, err := NewCodec(secret, "causeway-test")
	require.NoError(t, err)
	return codec
}

func TestSessionRoundTrip(t *testing.T) {
	t.Parallel()
	codec := testCodec(t)

	now := time.Now().UTC()
	raw, err := codec.MintSession("01PRINCIPAL", "alice@x.org", time.Hour, now)
	require.NoError(t, err)

	claims, err := codec.VerifySession(raw)
	require.NoError(t, err)
	require.Equal(t, "01PRINCIPAL", claims.Subject)
	require.Equal(t, "alice@x.org", claims.Email)
}

func TestInviteRoundTrip(t *testing.T) {
	t.Parallel()
	codec := testCodec(t)

	now := time.Now().UTC()
	raw, err := codec.MintInvite("01INVITE", now.Add(time.Hour), now)
	require.NoError(t, err)

	id, err := codec.VerifyInvite(raw)
	require.NoError(t, err)
	require.Equal(t, "01INVITE", id)
}

func TestAudiencesAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	codec := testCodec(t)

	now := time.Now().UTC()
	session, err := codec.MintSession("01PRINCIPAL", "a@x.org", time.Hour, now)
	require.NoError(t, err)
	invite, err := codec.MintInvite("01INVITE", now.Add(time.Hour), now)
	require.NoError(t, err)

	_, err = codec.VerifyInvite(session)
	require.ErrorIs(t, err, ErrWrongUse)
	_, err = codec.VerifySession(invite)
	require.ErrorIs(t, err, ErrWrongUse)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()
	codec := testCodec(t)

	now := time.Now().UTC().Add(-2 * time.Hour)
	raw, err := codec.MintInvite("01INVITE", now.Add(time.Hour), now)
	require.NoError(t, err)

	_, err = codec.VerifyInvite(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Parallel()
	codec := testCodec(t)

	now := time.Now().UTC()
	raw, err := codec.MintInvite("01INVITE", now.Add(time.Hour), now)
	require.NoError(t, err)

	other, err := NewCodec([]byte("ffffffffffffffffffffffffffffffff"), "causeway-test")
	require.NoError(t, err)
	_, err = other.VerifyInvite(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuerPinned(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef0123456789abcdef")
	minter, err := NewCodec(secret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewCodec(secret, "causeway-test")
	require.NoError(t, err)

	raw, err := minter.MintInvite("01INVITE", time.Now().UTC().Add(time.Hour), time.Now().UTC())
	require.NoError(t, err)

	_, err = verifier.VerifyInvite(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoadOrGenerateSecret(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "secret")

	first, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.Len(t, first, secretBytes)

	// Second load must return the same material, not regenerate.
	second, err := LoadOrGenerateSecret(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
