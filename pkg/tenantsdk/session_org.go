package tenantsdk

import (
	"context"
	"net/http"
)

// CreateOrganization creates an organization (super-admin only).
func (s *Session) CreateOrganization(ctx context.Context, name string) (*Organization, error) {
	var out Organization
	err := s.doAuthJSON(ctx, http.MethodPost, "/v1/organizations",
		OrganizationCreateRequest{Name: name}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListOrganizations lists the organizations visible to the principal:
// every organization for super-admins, member organizations otherwise.
func (s *Session) ListOrganizations(ctx context.Context) (*OrganizationListResponse, error) {
	var out OrganizationListResponse
	err := s.doAuthJSON(ctx, http.MethodGet, "/v1/organizations", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSubscription sets an organization's subscription status to
// "active" or "inactive" (super-admin only).
func (s *Session) UpdateSubscription(ctx context.Context, organizationID, status string) (*Organization, error) {
	var out Organization
	err := s.doAuthJSON(ctx, http.MethodPut, "/v1/organizations/"+organizationID+"/subscription",
		SubscriptionUpdateRequest{Status: status}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMembers lists the role assignments in an organization.
func (s *Session) ListMembers(ctx context.Context, organizationID string) (*MemberListResponse, error) {
	var out MemberListResponse
	err := s.doAuthJSON(ctx, http.MethodGet, "/v1/organizations/"+organizationID+"/members",
		nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMember assigns a role to an existing principal, addressed by
// email, without going through the invite flow.
func (s *Session) AddMember(ctx context.Context, organizationID string, req MemberAddRequest) (*Role, error) {
	var out Role
	err := s.doAuthJSON(ctx, http.MethodPost, "/v1/organizations/"+organizationID+"/members",
		req, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetMemberSuspension suspends or reinstates a member's role in an
// organization.
func (s *Session) SetMemberSuspension(ctx context.Context, organizationID, userID string, suspended bool) error {
	path := "/v1/organizations/" + organizationID + "/members/" + userID + "/suspension"
	return s.doAuthJSON(ctx, http.MethodPut, path,
		SuspensionUpdateRequest{Suspended: suspended}, nil, http.StatusNoContent)
}
