package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

func writeInvalidRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, tenantsdk.ErrorResponse{
		Error:            "invalid_request",
		ErrorDescription: description,
	})
}

func writeServerError(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusInternalServerError, tenantsdk.ErrorResponse{
		Error:            "server_error",
		ErrorDescription: description,
	})
}

func writeAuthRequired(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
		Error:            "auth_required",
		ErrorDescription: "Authentication required",
	})
}

func writeOrganizationNotFound(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
		Error:            "organization_not_found",
		ErrorDescription: "Organization not found",
	})
}

// writeInviteError maps invite lifecycle errors onto the wire. The
// terminal states use 410 Gone so clients can distinguish a consumed
// invite from one that never existed.
func writeInviteError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		writeAuthRequired(w)
	case errors.Is(err, service.ErrInvalidToken):
		httpx.WriteJSON(w, http.StatusUnauthorized, tenantsdk.ErrorResponse{
			Error:            "invalid_token",
			ErrorDescription: "Invite token is malformed or has a bad signature",
		})
	case errors.Is(err, service.ErrInviteNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
			Error:            "invite_not_found",
			ErrorDescription: "Invite not found",
		})
	case errors.Is(err, service.ErrInviteCancelled):
		httpx.WriteJSON(w, http.StatusGone, tenantsdk.ErrorResponse{
			Error:            "invite_cancelled",
			ErrorDescription: "Invite has been cancelled",
		})
	case errors.Is(err, service.ErrInviteAlreadyAccepted):
		httpx.WriteJSON(w, http.StatusGone, tenantsdk.ErrorResponse{
			Error:            "invite_already_accepted",
			ErrorDescription: "Invite has already been accepted",
		})
	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteJSON(w, http.StatusGone, tenantsdk.ErrorResponse{
			Error:            "invite_expired",
			ErrorDescription: "Invite has expired",
		})
	case errors.Is(err, service.ErrEmailMismatch):
		httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
			Error:            "email_mismatch",
			ErrorDescription: "Invite was issued for a different email",
		})
	default:
		log.Error("invite operation failed", "err", err)
		writeServerError(w, "Failed to process invite")
	}
}

// denyWriter renders blocked guard decisions. In message mode the
// caller gets a 403 with the decision's reason; in redirect mode a
// 303 to the configured location, for browser-facing deployments.
type denyWriter struct {
	Mode        service.DenyMode
	RedirectURL string
}

func (d denyWriter) WriteDenied(w http.ResponseWriter, r *http.Request, decision service.Decision) {
	if d.Mode == service.DenyModeRedirect && d.RedirectURL != "" {
		http.Redirect(w, r, d.RedirectURL, http.StatusSeeOther)
		return
	}

	httpx.WriteJSON(w, http.StatusForbidden, tenantsdk.ErrorResponse{
		Error:            "access_denied",
		ErrorDescription: decision.Reason,
	})
}
