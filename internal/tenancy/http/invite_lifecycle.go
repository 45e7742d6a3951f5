package http

import (
	"encoding/json"
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

// InviteLifecycleHandler serves the token-facing half of the invite
// flow: validation, acceptance by an authenticated principal, and
// registration of a brand-new account.
type InviteLifecycleHandler struct {
	InviteService *service.InviteService
}

// HandleValidate godoc
//
//	@Summary		Invite Validation Endpoint
//	@Description	Check an invite token without consuming it. Returns the invite's email, role and organization name so a registration page can render them. Terminal invites report their state as an error.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	query		string						true	"Signed invite token"
//	@Success		200		{object}	tenantsdk.InviteValidation	"email, role_name, organization_name, user_exists, already_member"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		410		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/invites/validate [get].
func (h *InviteLifecycleHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.URL.Query().Get("token")
	if token == "" {
		writeInvalidRequest(w, "token is required")
		return
	}

	validation, err := h.InviteService.Validate(ctx, token)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.InviteValidation{
		Email:            validation.Email,
		RoleName:         string(validation.Role),
		OrganizationName: validation.OrganizationName,
		UserExists:       validation.UserExists,
		AlreadyMember:    validation.AlreadyMember,
	})
}

// HandleAccept godoc
//
//	@Summary		Invite Acceptance Endpoint
//	@Description	Accept an invitation as the authenticated principal. The invite's email must match the session's email. Accepting an already held membership, or replaying an accepted invite as the same principal, succeeds with already_member=true.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.InviteAcceptRequest	true	"Accept request"
//	@Success		200		{object}	tenantsdk.InviteAcceptResponse	"already_member, organization_id, role_name"
//	@Failure		400		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		410		{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/accept [post].
func (h *InviteLifecycleHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.InviteAcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeInvalidRequest(w, "token is required")
		return
	}

	result, err := h.InviteService.Accept(ctx, req.Token, httpx.PrincipalIDFromCtx(ctx))
	if err != nil {
		writeInviteError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.InviteAcceptResponse{
		AlreadyMember:  result.AlreadyMember,
		OrganizationID: result.Invite.OrganizationID,
		RoleName:       string(result.Invite.Role),
	})
}

// HandleRegister godoc
//
//	@Summary		Invite Registration Endpoint
//	@Description	Provision an account from an invite token and accept the invite in the same call. The email comes from the invite, never from the request. An existing account that already holds a password cannot be claimed this way.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.InviteRegisterRequest		true	"Registration request"
//	@Success		201		{object}	tenantsdk.InviteRegisterResponse	"principal_id, already_member, organization_id"
//	@Failure		400		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invites/register [post].
func (h *InviteLifecycleHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.InviteRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" || req.Password == "" {
		writeInvalidRequest(w, "token and password are required")
		return
	}

	result, err := h.InviteService.RegisterFromInvite(ctx, req.Token, req.Password, req.FirstName, req.LastName)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.InviteRegisterResponse{
		PrincipalID:    result.Principal.ID,
		AlreadyMember:  result.AlreadyMember,
		OrganizationID: result.Invite.OrganizationID,
	})
}
