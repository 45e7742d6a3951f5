package tenantsdk

import (
	"context"
	"net/http"
)

// CreateInvite issues an invitation and sends the invite email.
// Requires the invites:manage permission in the target organization.
func (s *Session) CreateInvite(ctx context.Context, req InviteCreateRequest) (*InviteCreateResponse, error) {
	var out InviteCreateResponse
	err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites", req, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite accepts an invitation as the authenticated principal.
// The invite's email must match the session's email.
func (s *Session) AcceptInvite(ctx context.Context, token string) (*InviteAcceptResponse, error) {
	var out InviteAcceptResponse
	err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites/accept",
		InviteAcceptRequest{Token: token}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvites lists invitations for an organization. Pass "*" to list
// across all organizations (super-admin only).
func (s *Session) ListInvites(ctx context.Context, organizationID string) (*InviteListResponse, error) {
	path := "/v1/invites?organization_id=" + queryEscape(organizationID)

	var out InviteListResponse
	err := s.doAuthJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteSummary returns outstanding invite counts per organization
// (super-admin only).
func (s *Session) InviteSummary(ctx context.Context) (*InviteSummaryResponse, error) {
	var out InviteSummaryResponse
	err := s.doAuthJSON(ctx, http.MethodGet, "/v1/invites?summary=true", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendInvite re-sends the invite email with a token covering the
// invite's remaining lifetime. Terminal invites are skipped, not
// failed.
func (s *Session) ResendInvite(ctx context.Context, inviteID string) (*InviteResendResponse, error) {
	var out InviteResendResponse
	err := s.doAuthJSON(ctx, http.MethodPost, "/v1/invites/"+inviteID+"/resend",
		nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelInvite cancels a pending invitation. Cancelling an already
// cancelled invite is a no-op; an accepted invite cannot be cancelled.
func (s *Session) CancelInvite(ctx context.Context, inviteID string) error {
	return s.doAuthJSON(ctx, http.MethodPost, "/v1/invites/"+inviteID+"/cancel",
		nil, nil, http.StatusNoContent)
}
