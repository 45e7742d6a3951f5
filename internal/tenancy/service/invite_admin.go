package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/slogx"
)

// ResendResult reports whether the invite email went out or the
// operation was skipped because the invite is in a terminal state.
type ResendResult struct {
	Invite  domain.Invite
	Skipped bool
}

// Resend re-sends the invite email with a freshly minted token. The
// token's exp equals the row's remaining lifetime; resending never
// extends expires_at, so no token outlives its backing row. A
// terminal invite (accepted, cancelled or past expiry) skips silently
// instead of erroring; the client retry loop must stay safe.
func (s *InviteService) Resend(ctx context.Context, inviteID string) (ResendResult, error) {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ResendResult{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return ResendResult{}, err
	}

	now := time.Now().UTC()
	if !invite.IsActive(now) {
		log.Info("resend skipped for terminal invite",
			slog.String("invite_id", invite.ID),
			slog.Bool("accepted", invite.IsAccepted()),
			slog.Bool("cancelled", invite.IsCancelled()),
			slog.Bool("expired", invite.IsExpired(now)),
		)
		return ResendResult{Invite: invite, Skipped: true}, nil
	}

	org, err := s.Store.Organizations().GetByID(ctx, invite.OrganizationID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch organization", slog.Any("error", err))
		return ResendResult{}, err
	}

	token, err := s.Tokens.MintInvite(invite.ID, invite.ExpiresAt, now)
	if err != nil {
		log.Error("failed to mint invite token", slog.Any("error", err))
		return ResendResult{}, err
	}

	if err := s.sendInviteMail(ctx, invite, org.Name, token); err != nil {
		return ResendResult{}, err
	}

	log.Info("invite resent",
		slog.String("invite_id", invite.ID),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return ResendResult{Invite: invite}, nil
}

// Cancel sets cancelled_at. An accepted invite cannot be cancelled;
// the acceptance audit trail stays intact. Cancelling an
// already-cancelled invite is a no-op success.
func (s *InviteService) Cancel(ctx context.Context, inviteID string) error {
	log := slogx.FromContext(ctx)

	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return err
	}

	if invite.IsAccepted() {
		return ErrInviteAlreadyAccepted
	}
	if invite.IsCancelled() {
		return nil
	}

	updated, err := s.Store.Invites().MarkCancelled(ctx, inviteID, time.Now().UTC())
	if err != nil {
		log.Error("failed to cancel invite", slog.Any("error", err))
		return err
	}
	if !updated {
		// Lost a race. Re-read to tell acceptance from cancellation.
		invite, err := s.Store.Invites().GetByID(ctx, inviteID)
		if err != nil {
			return err
		}
		if invite.IsAccepted() {
			return ErrInviteAlreadyAccepted
		}
		return nil
	}

	log.Info("invite cancelled", slog.String("invite_id", inviteID))
	return nil
}

// Get loads a single invite by id.
func (s *InviteService) Get(ctx context.Context, inviteID string) (domain.Invite, error) {
	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		return domain.Invite{}, fmt.Errorf("load invite: %w", err)
	}
	return invite, nil
}

// List returns an organization's invites, or every invite for the
// wildcard.
func (s *InviteService) List(ctx context.Context, orgID string) ([]domain.Invite, error) {
	if orgID == domain.WildcardOrganization {
		return s.Store.Invites().ListAll(ctx)
	}
	return s.Store.Invites().ListByOrg(ctx, orgID)
}

// Summary returns outstanding-invite counts keyed by organization id.
func (s *InviteService) Summary(ctx context.Context) (map[string]int, error) {
	return s.Store.Invites().CountsByOrganization(ctx, time.Now().UTC())
}
