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

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP godoc
//
//	@Summary		Bootstrap Endpoint
//	@Description	Provision the first super-admin principal. Only succeeds while no principals exist and the supplied token matches the configured bootstrap token.
//	@Tags			System
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.BootstrapRequest	true	"Bootstrap request"
//	@Success		201		{object}	tenantsdk.BootstrapResponse	"principal"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	principal, err := h.BootstrapService.Bootstrap(
		ctx, req.Token, req.Email, req.Password, req.FirstName, req.LastName,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBootstrapAlready):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "already_bootstrapped",
				ErrorDescription: "Service has already been bootstrapped",
			})
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
				Error:            "access_denied",
				ErrorDescription: "Invalid bootstrap token",
			})
		case errors.Is(err, service.ErrBootstrapInvalid):
			writeInvalidRequest(w, "Email and password are required")
		default:
			log.Error("bootstrap failed", "err", err)
			writeServerError(w, "Failed to bootstrap service")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, tenantsdk.BootstrapResponse{
		Principal: renderPrincipal(principal),
	})
}
