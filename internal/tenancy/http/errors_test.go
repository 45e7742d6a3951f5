package http

import (
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

func TestWriteInviteErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"auth required", service.ErrAuthRequired, 401, "auth_required"},
		{"bad token signature", service.ErrInvalidToken, 401, "invalid_token"},
		{"missing row", service.ErrInviteNotFound, 404, "invite_not_found"},
		{"cancelled", service.ErrInviteCancelled, 410, "invite_cancelled"},
		{"already accepted", service.ErrInviteAlreadyAccepted, 410, "invite_already_accepted"},
		{"expired", service.ErrInviteExpired, 410, "invite_expired"},
		{"email mismatch", service.ErrEmailMismatch, 403, "email_mismatch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeInviteError(rec, slog.Default(), tc.err)

			require.Equal(t, tc.status, rec.Code)

			var body tenantsdk.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tc.code, body.Error)
			require.NotEmpty(t, body.ErrorDescription)
		})
	}
}
