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

type SessionHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. Returns a bearer token and the resolved identity: roles, active organization and effective permissions.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	tenantsdk.LoginResponse	"access_token, token_type, identity"
//	@Failure		400		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/session [post].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeInvalidRequest(w, "email and password are required")
		return
	}

	token, identity, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
				Error:            "invalid_credentials",
				ErrorDescription: "Invalid email or password",
			})
			return
		}
		log.Error("login failed", "err", err)
		writeServerError(w, "Failed to authenticate")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tenantsdk.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Identity:    renderIdentity(identity),
	})
}
