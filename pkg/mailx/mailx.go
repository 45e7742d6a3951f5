// Package mailx sends transactional email. The production
// implementation uses Amazon SESv2; a logging implementation stands
// in when no sender address is configured.
package mailx

import (
	"context"
	"errors"
	"time"
)

var ErrSendFailed = errors.New("mailx: send failed")

// InviteEmail carries everything needed to render an invitation.
type InviteEmail struct {
	To               string
	OrganizationName string
	Role             string
	AcceptURL        string
	ExpiresAt        time.Time
}

// Mailer delivers invitation email.
type Mailer interface {
	SendInvite(ctx context.Context, email InviteEmail) error
}
