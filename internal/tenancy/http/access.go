package http

import (
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"
)

type AccessHandler struct {
	AccessService *service.AccessService
}

// ServeHTTP godoc
//
//	@Summary		Access Decision Endpoint
//	@Description	Evaluate the access guard for an organization selection, optionally requiring a permission. Blocked states are reported as a 200 decision with allowed=false, never as an error status.
//	@Tags			Access
//	@Produce		json
//	@Param			organization_id	query		string					true	"Organization id, or * for the wildcard selection"
//	@Param			permission		query		string					false	"Permission to require on top of the guard, e.g. donors:read"
//	@Success		200				{object}	tenantsdk.AccessDecision	"state, allowed, reason, missing_permission"
//	@Failure		400				{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		401				{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/access/decision [get].
func (h *AccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orgID := r.URL.Query().Get("organization_id")
	if orgID == "" {
		writeInvalidRequest(w, "organization_id is required")
		return
	}
	sel := domain.SelectOrganization(orgID)
	principalID := httpx.PrincipalIDFromCtx(ctx)

	var (
		decision service.Decision
		err      error
	)
	if permission := r.URL.Query().Get("permission"); permission != "" {
		decision, err = h.AccessService.Require(ctx, principalID, sel, domain.Permission(permission))
	} else {
		decision, err = h.AccessService.Evaluate(ctx, principalID, sel)
	}
	if err != nil {
		log.Error("failed to evaluate access", "err", err)
		writeServerError(w, "Failed to evaluate access")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderDecision(decision))
}
