package tenantsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated client bound to a bearer token.
// Sessions are created via Client.Login or Client.NewSessionFromToken.
type Session struct {
	client      *Client
	accessToken string

	// identity is the resolution captured at login. It may go stale;
	// call Identity to refresh it.
	identity Identity
}

// AccessToken returns the session's bearer token, e.g. for storage.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// CachedIdentity returns the identity captured at login or by the
// last Identity or SelectOrganization call.
func (s *Session) CachedIdentity() Identity {
	return s.identity
}

// Identity resolves the principal's current identity: roles, active
// organization selection and the derived permission set.
func (s *Session) Identity(ctx context.Context) (*Identity, error) {
	var out Identity
	err := s.doAuthJSON(ctx, http.MethodGet, "/v1/identity", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	s.identity = out
	return &out, nil
}

// SelectOrganization switches the principal's active organization.
// An invalid selection retains the previous one and reports
// Applied false rather than failing.
func (s *Session) SelectOrganization(ctx context.Context, organizationID string) (*SelectOrganizationResponse, error) {
	var out SelectOrganizationResponse
	err := s.doAuthJSON(ctx, http.MethodPut, "/v1/identity/organization",
		SelectOrganizationRequest{OrganizationID: organizationID}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	s.identity = out.Identity
	return &out, nil
}

// AccessDecision evaluates the access guard for an organization,
// optionally requiring a permission. Blocked states come back as a
// decision with Allowed false, not as an error.
func (s *Session) AccessDecision(ctx context.Context, organizationID, permission string) (*AccessDecision, error) {
	path := "/v1/access/decision?organization_id=" + queryEscape(organizationID)
	if permission != "" {
		path += "&permission=" + queryEscape(permission)
	}

	var out AccessDecision
	err := s.doAuthJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
