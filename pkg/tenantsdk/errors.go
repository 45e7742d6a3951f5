package tenantsdk

import "fmt"

// Stable error codes returned by the service.
const (
	ErrorCodeInvalidRequest        = "invalid_request"
	ErrorCodeAuthRequired          = "auth_required"
	ErrorCodeInvalidToken          = "invalid_token"
	ErrorCodeInvalidCredentials    = "invalid_credentials"
	ErrorCodeAccessDenied          = "access_denied"
	ErrorCodeEmailMismatch         = "email_mismatch"
	ErrorCodeInviteNotFound        = "invite_not_found"
	ErrorCodeInviteCancelled       = "invite_cancelled"
	ErrorCodeInviteAccepted        = "invite_already_accepted"
	ErrorCodeInviteExpired         = "invite_expired"
	ErrorCodeDuplicateActiveInvite = "duplicate_active_invite"
	ErrorCodeOrganizationNotFound  = "organization_not_found"
	ErrorCodePrincipalNotFound     = "principal_not_found"
	ErrorCodeAlreadyMember         = "already_member"
	ErrorCodeMailSendFailed        = "mail_send_failed"
	ErrorCodeAlreadyBootstrapped   = "already_bootstrapped"
	ErrorCodeServerError           = "server_error"
)

// APIError is a non-2xx response decoded into the service's error
// shape. It implements the error interface.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Description)
}

// IsCode reports whether err is an APIError carrying the given code.
func IsCode(err error, code string) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Code == code
}
