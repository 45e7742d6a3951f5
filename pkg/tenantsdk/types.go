package tenantsdk

import "time"

// ErrorResponse is the JSON shape of every error the service returns.
type ErrorResponse struct {
	// Error is the stable machine-readable code (e.g. "invalid_token",
	// "duplicate_active_invite").
	Error string `json:"error"`

	// ErrorDescription is a human-readable description.
	ErrorDescription string `json:"error_description,omitempty"`
}

// LoginRequest is the body of POST /v1/session.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and the resolved identity.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"` // always "Bearer"
	Identity    Identity `json:"identity"`
}

// Identity is the resolved view of the authenticated principal.
type Identity struct {
	Principal          Principal `json:"principal"`
	Roles              []Role    `json:"roles"`
	IsSuperAdmin       bool      `json:"is_super_admin"`
	ActiveOrganization string    `json:"active_organization"` // "*" for the wildcard, "" for none
	Permissions        []string  `json:"permissions"`
}

type Principal struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Role struct {
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	RoleName       string    `json:"role_name"`
	Suspended      bool      `json:"suspended"`
	CreatedAt      time.Time `json:"created_at"`
}

// SelectOrganizationRequest is the body of PUT /v1/identity/organization.
type SelectOrganizationRequest struct {
	OrganizationID string `json:"organization_id"`
}

// SelectOrganizationResponse reports whether the selection was applied;
// an invalid id retains the previous selection and sets Applied false.
type SelectOrganizationResponse struct {
	Applied  bool     `json:"applied"`
	Identity Identity `json:"identity"`
}

// AccessDecision is the body of GET /v1/access/decision. Blocked
// states return 200 with Allowed false, never a 5xx.
type AccessDecision struct {
	State             string `json:"state"`
	Allowed           bool   `json:"allowed"`
	Reason            string `json:"reason,omitempty"`
	MissingPermission string `json:"missing_permission,omitempty"`
}

// InviteCreateRequest is the body of POST /v1/invites.
type InviteCreateRequest struct {
	Email          string `json:"email"`
	RoleName       string `json:"role_name"`
	OrganizationID string `json:"organization_id"`
}

// Invite is the service's view of an invitation row.
type Invite struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	OrganizationID string     `json:"organization_id"`
	RoleName       string     `json:"role_name"`
	InvitedBy      string     `json:"invited_by"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
}

// InviteCreateResponse returns the persisted invite. The signed token
// travels only in the email; it is echoed here for trusted callers
// such as test harnesses and admin tooling.
type InviteCreateResponse struct {
	Invite Invite `json:"invite"`
	Token  string `json:"token"`
}

// InviteValidation is the body of GET /v1/invites/validate.
type InviteValidation struct {
	Email            string `json:"email"`
	RoleName         string `json:"role_name"`
	OrganizationName string `json:"organization_name"`
	UserExists       bool   `json:"user_exists"`
	AlreadyMember    bool   `json:"already_member"`
}

// InviteAcceptRequest is the body of POST /v1/invites/accept.
type InviteAcceptRequest struct {
	Token string `json:"token"`
}

// InviteAcceptResponse reports acceptance. AlreadyMember is true when
// the membership predated this call, including replays.
type InviteAcceptResponse struct {
	AlreadyMember  bool   `json:"already_member"`
	OrganizationID string `json:"organization_id"`
	RoleName       string `json:"role_name"`
}

// InviteRegisterRequest is the body of POST /v1/invites/register.
type InviteRegisterRequest struct {
	Token     string `json:"token"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// InviteRegisterResponse reports account provisioning plus acceptance.
type InviteRegisterResponse struct {
	PrincipalID    string `json:"principal_id"`
	AlreadyMember  bool   `json:"already_member"`
	OrganizationID string `json:"organization_id"`
}

// InviteResendResponse reports a resend; Skipped is true when the
// invite is already terminal (accepted, cancelled or expired).
type InviteResendResponse struct {
	Skipped bool `json:"skipped"`
}

// InviteListResponse is the body of GET /v1/invites.
type InviteListResponse struct {
	Invites []Invite `json:"invites"`
}

// InviteSummaryResponse maps organization id to its outstanding
// invite count.
type InviteSummaryResponse struct {
	Counts map[string]int `json:"counts"`
}

// Organization is the service's view of an organization row.
type Organization struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SubscriptionStatus string    `json:"subscription_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// OrganizationCreateRequest is the body of POST /v1/organizations.
type OrganizationCreateRequest struct {
	Name string `json:"name"`
}

// OrganizationListResponse is the body of GET /v1/organizations.
type OrganizationListResponse struct {
	Organizations []Organization `json:"organizations"`
}

// SubscriptionUpdateRequest is the body of
// PUT /v1/organizations/{id}/subscription.
type SubscriptionUpdateRequest struct {
	Status string `json:"status"` // "active" or "inactive"
}

// MemberAddRequest is the body of POST /v1/organizations/{id}/members.
// The principal is addressed by email and must already exist.
type MemberAddRequest struct {
	Email    string `json:"email"`
	RoleName string `json:"role_name"`
}

// MemberListResponse is the body of GET /v1/organizations/{id}/members.
type MemberListResponse struct {
	Members []Role `json:"members"`
}

// SuspensionUpdateRequest is the body of
// PUT /v1/organizations/{id}/members/{userID}/suspension.
type SuspensionUpdateRequest struct {
	Suspended bool `json:"suspended"`
}

// HealthChecks reports the status of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is the body of GET /livez and GET /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// BootstrapRequest is the body of POST /v1/bootstrap. Token must
// match the service's configured bootstrap token.
type BootstrapRequest struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// BootstrapResponse returns the first super-admin principal.
type BootstrapResponse struct {
	Principal Principal `json:"principal"`
}
