package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

type IdentityHandler struct {
	IdentityService *service.IdentityService
}

// HandleGet godoc
//
//	@Summary		Identity Endpoint
//	@Description	Resolve the authenticated principal's identity: principal row, role assignments, validated organization selection and the effective permission set.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	tenantsdk.Identity		"principal, roles, is_super_admin, active_organization, permissions"
//	@Failure		401	{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/identity [get].
func (h *IdentityHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	identity, err := h.IdentityService.Resolve(ctx, httpx.PrincipalIDFromCtx(ctx))
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			writeAuthRequired(w)
			return
		}
		log.Error("failed to resolve identity", "err", err)
		writeServerError(w, "Failed to resolve identity")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderIdentity(identity))
}

// HandleSelect godoc
//
//	@Summary		Organization Selection Endpoint
//	@Description	Switch the principal's active organization. Super-admins may select "*" to act across all organizations. An invalid selection retains the previous one and reports applied=false.
//	@Tags			Identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.SelectOrganizationRequest		true	"Selection request"
//	@Success		200		{object}	tenantsdk.SelectOrganizationResponse	"applied, identity"
//	@Failure		400		{object}	tenantsdk.ErrorResponse					"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse					"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/identity/organization [put].
func (h *IdentityHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.SelectOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.OrganizationID == "" {
		writeInvalidRequest(w, "organization_id is required")
		return
	}

	identity, applied, err := h.IdentityService.SetActive(ctx, httpx.PrincipalIDFromCtx(ctx), req.OrganizationID)
	if err != nil {
		if errors.Is(err, service.ErrAuthRequired) {
			writeAuthRequired(w)
			return
		}
		log.Error("failed to select organization", "err", err)
		writeServerError(w, "Failed to select organization")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.SelectOrganizationResponse{
		Applied:  applied,
		Identity: renderIdentity(identity),
	})
}
