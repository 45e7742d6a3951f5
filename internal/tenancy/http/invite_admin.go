package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

// InviteAdminHandler serves the administrative half of the invite
// flow: issuing, listing, resending and cancelling. Every operation is
// guarded by the invites:manage permission in the invite's
// organization.
type InviteAdminHandler struct {
	InviteService *service.InviteService
	AccessService *service.AccessService
	Deny          denyWriter
}

// requireInvitesManage runs the access guard for the given
// organization and writes the denial if it blocks. Returns false when
// the response has already been written.
func (h *InviteAdminHandler) requireInvitesManage(w http.ResponseWriter, r *http.Request, orgID string) bool {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	decision, err := h.AccessService.Require(
		ctx,
		httpx.PrincipalIDFromCtx(ctx),
		domain.SelectOrganization(orgID),
		domain.PermInvitesManage,
	)
	if err != nil {
		log.Error("failed to evaluate access", "err", err)
		writeServerError(w, "Failed to evaluate access")
		return false
	}
	if !decision.Allowed {
		h.Deny.WriteDenied(w, r, decision)
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Invite Creation Endpoint
//	@Description	Issue an invitation and send the invite email. The role must be an assignable organization role; super_admin is never invitable. A second active invite for the same email, organization and role is rejected. A mail delivery failure keeps the invite row so it can be resent.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.InviteCreateRequest	true	"Invite request"
//	@Success		201		{object}	tenantsdk.InviteCreateResponse	"invite, token"
//	@Failure		400		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteAdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.InviteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.RoleName == "" || req.OrganizationID == "" {
		writeInvalidRequest(w, "email, role_name and organization_id are required")
		return
	}

	if !h.requireInvitesManage(w, r, req.OrganizationID) {
		return
	}

	invite, token, err := h.InviteService.Create(
		ctx, req.Email, req.RoleName, req.OrganizationID, httpx.PrincipalIDFromCtx(ctx),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeInvalidRequest(w, "role_name is not an assignable role")
		case errors.Is(err, service.ErrInvalidInviteRequest):
			writeInvalidRequest(w, "Invalid invite parameters")
		case errors.Is(err, service.ErrOrganizationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
				Error:            "organization_not_found",
				ErrorDescription: "Organization not found",
			})
		case errors.Is(err, service.ErrDuplicateActiveInvite):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "duplicate_active_invite",
				ErrorDescription: "An active invite already exists for this email, organization and role",
			})
		case errors.Is(err, service.ErrMailSendFailed):
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "mail_send_failed",
				ErrorDescription: "Invite was created but the email could not be sent; resend it later",
			})
		default:
			log.Error("failed to create invite", "err", err)
			writeServerError(w, "Failed to create invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.InviteCreateResponse{
		Invite: renderInvite(invite),
		Token:  token,
	})
}

// HandleList godoc
//
//	@Summary		Invite Listing Endpoint
//	@Description	List an organization's invitations, or every invitation for organization_id=* (super-admin only). With summary=true, returns outstanding invite counts per organization instead.
//	@Tags			Invitations
//	@Produce		json
//	@Param			organization_id	query		string						false	"Organization id, or * for all organizations"
//	@Param			summary			query		bool						false	"Return per-organization counts instead of rows"
//	@Success		200				{object}	tenantsdk.InviteListResponse	"invites"
//	@Failure		400				{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		403				{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if r.URL.Query().Get("summary") == "true" {
		if !h.requireInvitesManage(w, r, domain.WildcardOrganization) {
			return
		}
		counts, err := h.InviteService.Summary(ctx)
		if err != nil {
			log.Error("failed to summarize invites", "err", err)
			writeServerError(w, "Failed to summarize invites")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, tenantsdk.InviteSummaryResponse{Counts: counts})
		return
	}

	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		writeInvalidRequest(w, "organization_id is required")
		return
	}
	if !h.requireInvitesManage(w, r, orgID) {
		return
	}

	invites, err := h.InviteService.List(ctx, orgID)
	if err != nil {
		log.Error("failed to list invites", "err", err)
		writeServerError(w, "Failed to list invites")
		return
	}

	out := tenantsdk.InviteListResponse{Invites: make([]tenantsdk.Invite, 0, len(invites))}
	for _, i := range invites {
		out.Invites = append(out.Invites, renderInvite(i))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleResend godoc
//
//	@Summary		Invite Resend Endpoint
//	@Description	Re-send the invite email with a token covering the invite's remaining lifetime. Resending never extends the invite's expiry. A terminal invite is skipped, not failed.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string							true	"Invite id"
//	@Success		200	{object}	tenantsdk.InviteResendResponse	"skipped"
//	@Failure		403	{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/resend [post].
func (h *InviteAdminHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	inviteID := r.PathValue("id")

	invite, err := h.InviteService.Get(ctx, inviteID)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}
	if !h.requireInvitesManage(w, r, invite.OrganizationID) {
		return
	}

	result, err := h.InviteService.Resend(ctx, inviteID)
	if err != nil {
		if errors.Is(err, service.ErrMailSendFailed) {
			httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
				Error:            "mail_send_failed",
				ErrorDescription: "Failed to send invite email",
			})
			return
		}
		writeInviteError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.InviteResendResponse{Skipped: result.Skipped})
}

// HandleCancel godoc
//
//	@Summary		Invite Cancellation Endpoint
//	@Description	Cancel a pending invitation. Cancelling an already cancelled invite is a no-op; an accepted invite cannot be cancelled.
//	@Tags			Invitations
//	@Param			id	path	string	true	"Invite id"
//	@Success		204	"no content"
//	@Failure		403	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		410	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/{id}/cancel [post].
func (h *InviteAdminHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	inviteID := r.PathValue("id")

	invite, err := h.InviteService.Get(ctx, inviteID)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}
	if !h.requireInvitesManage(w, r, invite.OrganizationID) {
		return
	}

	if err := h.InviteService.Cancel(ctx, inviteID); err != nil {
		writeInviteError(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
