package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"
	"github.com/causewayhq/causeway/pkg/cryptox"
	"github.com/causewayhq/causeway/pkg/idx"
	"github.com/causewayhq/causeway/pkg/mailx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tokenx"
)

var (
	ErrInvalidInviteRequest  = errors.New("invalid invite request")
	ErrInvalidRole           = errors.New("invalid role")
	ErrDuplicateActiveInvite = errors.New("an active invite already exists for this email, organization and role")
	ErrInviteNotFound        = errors.New("invite not found")
	ErrInviteCancelled       = errors.New("invite has been cancelled")
	ErrInviteAlreadyAccepted = errors.New("invite has already been accepted")
	ErrInviteExpired         = errors.New("invite has expired")
	ErrInvalidToken          = errors.New("invalid invite token")
	ErrEmailMismatch         = errors.New("invite was issued for a different email")
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrMailSendFailed        = errors.New("failed to send invite email")
)

// DefaultInviteTTL is how long a freshly issued invite stays valid.
const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteService struct {
	Store     store.Store
	Tokens    *tokenx.Codec
	Mailer    mailx.Mailer
	InviteTTL time.Duration

	// BaseURL is the public application URL embedded in invite links.
	BaseURL string
}

// Validation is the side-effect-free status report for a token.
type Validation struct {
	Invite           domain.Invite
	Email            string
	Role             domain.RoleName
	OrganizationName string
	UserExists       bool
	AlreadyMember    bool
}

// AcceptResult reports a successful acceptance. AlreadyMember is true
// when the role row predated this call, including the case where a
// concurrent accept won the race.
type AcceptResult struct {
	Invite        domain.Invite
	Principal     domain.Principal
	AlreadyMember bool
}

// Create issues an invite: inserts the row, mints a token bound to the
// row's expiry and sends the email. A mail failure surfaces
// ErrMailSendFailed but the row stays persisted so the caller can
// resend the same invite later.
func (s *InviteService) Create(
	ctx context.Context,
	email string,
	roleName string,
	organizationID string,
	invitedBy string,
) (domain.Invite, string, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || organizationID == "" {
		return domain.Invite{}, "", ErrInvalidInviteRequest
	}

	role, err := domain.ParseRoleName(roleName)
	if err != nil {
		log.Warn("attempted to create invite with unknown role",
			slog.String("role_name", roleName),
		)
		return domain.Invite{}, "", ErrInvalidRole
	}

	// Super-admin is not an organization-scoped role and cannot be
	// granted by invite.
	if role == domain.RoleSuperAdmin {
		log.Warn("attempted to create super_admin invite",
			slog.String("invited_by", invitedBy),
		)
		return domain.Invite{}, "", ErrInvalidRole
	}

	// 2. The target organization must exist.
	org, err := s.Store.Organizations().GetByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, "", ErrOrganizationNotFound
		}
		log.Error("failed to fetch organization", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	now := time.Now().UTC()

	// 3. Reject while an active invite exists for the same
	// (email, organization, role).
	_, err = s.Store.Invites().FindActive(ctx, email, organizationID, role, now)
	if err == nil {
		log.Warn("duplicate active invite",
			slog.String("organization_id", organizationID),
			slog.String("role", string(role)),
		)
		return domain.Invite{}, "", ErrDuplicateActiveInvite
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check for active invite", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	ttl := s.InviteTTL
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}

	// 4. Insert the invite row.
	invite := domain.Invite{
		ID:             idx.New().String(),
		Email:          email,
		OrganizationID: organizationID,
		Role:           role,
		InvitedBy:      invitedBy,
		CreatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
	if err := s.Store.Invites().Create(ctx, invite); err != nil {
		log.Error("failed to create invite", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	// 5. Mint the token over {invite_id, exp = row expiry}.
	token, err := s.Tokens.MintInvite(invite.ID, invite.ExpiresAt, now)
	if err != nil {
		log.Error("failed to mint invite token", slog.Any("error", err))
		return domain.Invite{}, "", err
	}

	// 6. Send the email. The row stays on failure.
	if err := s.sendInviteMail(ctx, invite, org.Name, token); err != nil {
		return domain.Invite{}, "", err
	}

	log.Info("invite created",
		slog.String("invite_id", invite.ID),
		slog.String("organization_id", organizationID),
		slog.String("role", string(role)),
		slog.Time("expires_at", invite.ExpiresAt),
	)

	return invite, token, nil
}

// Validate verifies a token and reports the invite's current status
// with no side effects. The row's expiry is authoritative and checked
// independently of the token's own exp.
func (s *InviteService) Validate(ctx context.Context, token string) (Validation, error) {
	log := slogx.FromContext(ctx)

	// 1. Verify signature and token expiry, then load the row and run
	// the terminal-state checks.
	invite, err := s.loadInviteByToken(ctx, token)
	if err != nil {
		return Validation{}, err
	}

	org, err := s.Store.Organizations().GetByID(ctx, invite.OrganizationID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch organization", slog.Any("error", err))
		return Validation{}, err
	}

	// 2. Determine whether a principal exists for the invited email,
	// and whether it is already a member of the organization.
	userExists := false
	alreadyMember := false
	principal, err := s.Store.Principals().GetByEmail(ctx, invite.Email)
	switch {
	case err == nil:
		userExists = true
		_, roleErr := s.Store.Roles().GetByUserAndOrg(ctx, principal.ID, invite.OrganizationID)
		if roleErr == nil {
			alreadyMember = true
		} else if !errors.Is(roleErr, store.ErrNotFound) {
			log.Error("failed to fetch role", slog.Any("error", roleErr))
			return Validation{}, roleErr
		}
	case errors.Is(err, store.ErrNotFound):
		// New user; they will register through the invite.
	default:
		log.Error("failed to fetch principal", slog.Any("error", err))
		return Validation{}, err
	}

	return Validation{
		Invite:           invite,
		Email:            invite.Email,
		Role:             invite.Role,
		OrganizationName: org.Name,
		UserExists:       userExists,
		AlreadyMember:    alreadyMember,
	}, nil
}

// Accept converts a valid invite into a role assignment for the
// authenticated principal, exactly once. Replays and concurrent
// retries resolve to success with AlreadyMember set; the observable
// end state (the role exists) is what matters.
func (s *InviteService) Accept(ctx context.Context, token, principalID string) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Require an authenticated principal.
	if principalID == "" {
		return AcceptResult{}, ErrAuthRequired
	}
	principal, err := s.Store.Principals().GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AcceptResult{}, ErrAuthRequired
		}
		log.Error("failed to fetch principal", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 2. Same checks as Validate, except an already-accepted invite is
	// resolved by the observable end state below instead of erroring
	// outright; accept must stay replay-safe.
	invite, err := s.verifyAndLoad(ctx, token)
	if err != nil {
		return AcceptResult{}, err
	}
	if invite.IsCancelled() {
		return AcceptResult{}, ErrInviteCancelled
	}

	// 3. The invite is bound to an email, case-insensitively.
	if !strings.EqualFold(principal.Email, invite.Email) {
		if invite.IsAccepted() {
			return AcceptResult{}, ErrInviteAlreadyAccepted
		}
		log.Warn("invite accept attempted with mismatched email",
			slog.String("invite_id", invite.ID),
			slog.String("principal_id", principal.ID),
		)
		return AcceptResult{}, ErrEmailMismatch
	}

	// 4. Replay of an accepted invite succeeds when the role row it
	// produced exists.
	if invite.IsAccepted() {
		_, err := s.Store.Roles().GetByUserAndOrg(ctx, principal.ID, invite.OrganizationID)
		if err == nil {
			return AcceptResult{Invite: invite, Principal: principal, AlreadyMember: true}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to fetch role", slog.Any("error", err))
			return AcceptResult{}, err
		}
		return AcceptResult{}, ErrInviteAlreadyAccepted
	}

	if invite.IsExpired(time.Now().UTC()) {
		return AcceptResult{}, ErrInviteExpired
	}

	alreadyMember, err := s.assignRoleAndAccept(ctx, invite, principal.ID)
	if err != nil {
		return AcceptResult{}, err
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("principal_id", principal.ID),
		slog.Bool("already_member", alreadyMember),
	)

	return AcceptResult{Invite: invite, Principal: principal, AlreadyMember: alreadyMember}, nil
}

// RegisterFromInvite is the unauthenticated acceptance path: validate
// the token, provision a principal for the invited email (or set the
// password on a pre-provisioned one), then run the identical
// role-insert-then-accept sequence.
func (s *InviteService) RegisterFromInvite(
	ctx context.Context,
	token string,
	password string,
	firstName string,
	lastName string,
) (AcceptResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	if password == "" {
		return AcceptResult{}, ErrInvalidInviteRequest
	}

	// 2. Same checks as Validate.
	invite, err := s.loadInviteByToken(ctx, token)
	if err != nil {
		return AcceptResult{}, err
	}

	// 3. Hash the password up front; it is needed on both paths.
	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return AcceptResult{}, err
	}

	now := time.Now().UTC()

	// 4. Find or provision the principal bound to the invited email.
	principal, err := s.Store.Principals().GetByEmail(ctx, invite.Email)
	switch {
	case err == nil:
		// A principal that has already set a password must accept the
		// invite through the authenticated path instead.
		if principal.HasPassword() {
			log.Warn("registration attempted for provisioned principal",
				slog.String("invite_id", invite.ID),
				slog.String("principal_id", principal.ID),
			)
			return AcceptResult{}, ErrEmailMismatch
		}
		if err := s.Store.Principals().UpdatePasswordHash(ctx, principal.ID, passwordHash); err != nil {
			log.Error("failed to set password", slog.Any("error", err))
			return AcceptResult{}, err
		}
		principal.PasswordHash = passwordHash

	case errors.Is(err, store.ErrNotFound):
		principal = domain.Principal{
			ID:           idx.New().String(),
			Email:        invite.Email,
			FirstName:    firstName,
			LastName:     lastName,
			PasswordHash: passwordHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.Store.Principals().Create(ctx, principal); err != nil {
			log.Error("failed to create principal", slog.Any("error", err))
			return AcceptResult{}, err
		}

	default:
		log.Error("failed to fetch principal", slog.Any("error", err))
		return AcceptResult{}, err
	}

	// 5. Identical role-insert-then-accept sequence.
	alreadyMember, err := s.assignRoleAndAccept(ctx, invite, principal.ID)
	if err != nil {
		return AcceptResult{}, err
	}

	log.Info("principal registered via invite",
		slog.String("invite_id", invite.ID),
		slog.String("principal_id", principal.ID),
		slog.String("organization_id", invite.OrganizationID),
		slog.String("role", string(invite.Role)),
	)

	return AcceptResult{Invite: invite, Principal: principal, AlreadyMember: alreadyMember}, nil
}

// verifyAndLoad verifies the token signature and expiry, then loads
// the invite row. Terminal-state checks are the caller's job.
func (s *InviteService) verifyAndLoad(ctx context.Context, token string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	inviteID, err := s.Tokens.VerifyInvite(token)
	if err != nil {
		log.Warn("invite token rejected", slog.Any("error", err))
		return domain.Invite{}, ErrInvalidToken
	}

	invite, err := s.Store.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	return invite, nil
}

// loadInviteByToken is verifyAndLoad plus the terminal-state mapping.
// Check order: cancelled, accepted, row expiry. The row expiry is
// checked even when the token's own exp still holds; after a resend
// the reverse can also be true, so both always run.
func (s *InviteService) loadInviteByToken(ctx context.Context, token string) (domain.Invite, error) {
	invite, err := s.verifyAndLoad(ctx, token)
	if err != nil {
		return domain.Invite{}, err
	}

	switch {
	case invite.IsCancelled():
		return domain.Invite{}, ErrInviteCancelled
	case invite.IsAccepted():
		return domain.Invite{}, ErrInviteAlreadyAccepted
	case invite.IsExpired(time.Now().UTC()):
		return domain.Invite{}, ErrInviteExpired
	}

	return invite, nil
}

// assignRoleAndAccept inserts the role row first, then flips
// accepted_at with a compare-and-swap. A duplicate role insert and a
// lost CAS both mean another path already produced the end state, so
// both collapse into alreadyMember success.
func (s *InviteService) assignRoleAndAccept(ctx context.Context, invite domain.Invite, principalID string) (bool, error) {
	log := slogx.FromContext(ctx)

	alreadyMember := false
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role := domain.Role{
			UserID:         principalID,
			OrganizationID: invite.OrganizationID,
			Name:           invite.Role,
			Suspended:      false,
			CreatedAt:      time.Now().UTC(),
		}

		err := tx.Roles().Create(ctx, role)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrAlreadyExists):
			alreadyMember = true
		default:
			log.Error("failed to create role",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
			return fmt.Errorf("assign role: %w", err)
		}

		// Only flip accepted_at once the role row is in place. Zero
		// affected rows means a concurrent accept won; the role exists
		// either way.
		updated, err := tx.Invites().MarkAccepted(ctx, invite.ID, time.Now().UTC())
		if err != nil {
			log.Error("failed to mark invite accepted",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
			return err
		}
		if !updated {
			alreadyMember = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return alreadyMember, nil
}

func (s *InviteService) sendInviteMail(ctx context.Context, invite domain.Invite, orgName, token string) error {
	log := slogx.FromContext(ctx)

	err := s.Mailer.SendInvite(ctx, mailx.InviteEmail{
		To:               invite.Email,
		OrganizationName: orgName,
		Role:             string(invite.Role),
		AcceptURL:        fmt.Sprintf("%s/invites/accept?token=%s", strings.TrimRight(s.BaseURL, "/"), token),
		ExpiresAt:        invite.ExpiresAt,
	})
	if err != nil {
		log.Error("failed to send invite email",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return ErrMailSendFailed
	}
	return nil
}
