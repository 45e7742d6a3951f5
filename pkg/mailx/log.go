package mailx

import (
	"context"

	"github.com/causewayhq/causeway/pkg/slogx"
)

// LogMailer logs invitations instead of sending them. Used when no
// sender address is configured, and in tests.
type LogMailer struct{}

func (LogMailer) SendInvite(ctx context.Context, email InviteEmail) error {
	slogx.FromContext(ctx).Info("invite email (delivery disabled)",
		"to", email.To,
		"organization", email.OrganizationName,
		"role", email.Role,
		"accept_url", email.AcceptURL,
		"expires_at", email.ExpiresAt,
	)
	return nil
}
