package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/service"
	"github.com/causewayhq/causeway/pkg/httpx"
	"github.com/causewayhq/causeway/pkg/slogx"
	"github.com/causewayhq/causeway/pkg/tenantsdk"
)

type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
	IdentityService     *service.IdentityService
	AccessService       *service.AccessService
	Deny                denyWriter
}

// require runs the access guard for an organization and permission,
// writing the denial on block. Returns false when the response has
// already been written.
func (h *OrganizationsHandler) require(w http.ResponseWriter, r *http.Request, orgID string, perm domain.Permission) bool {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	decision, err := h.AccessService.Require(
		ctx, httpx.PrincipalIDFromCtx(ctx), domain.SelectOrganization(orgID), perm,
	)
	if err != nil {
		log.Error("failed to evaluate access", "err", err)
		writeServerError(w, "Failed to evaluate access")
		return false
	}
	if !decision.Allowed {
		h.Deny.WriteDenied(w, r, decision)
		return false
	}
	return true
}

// HandleCreate godoc
//
//	@Summary		Organization Creation Endpoint
//	@Description	Create an organization with an active subscription. Super-admin only.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tenantsdk.OrganizationCreateRequest	true	"Organization request"
//	@Success		201		{object}	tenantsdk.Organization				"id, name, subscription_status"
//	@Failure		400		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tenantsdk.OrganizationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if !h.require(w, r, domain.WildcardOrganization, domain.PermOrgManage) {
		return
	}

	org, err := h.OrganizationService.Create(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrganization) {
			writeInvalidRequest(w, "name is required")
			return
		}
		log.Error("failed to create organization", "err", err)
		writeServerError(w, "Failed to create organization")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderOrganization(org))
}

// HandleList godoc
//
//	@Summary		Organization Listing Endpoint
//	@Description	List the organizations visible to the principal: every organization for super-admins, member organizations otherwise.
//	@Tags			Organizations
//	@Produce		json
//	@Success		200	{object}	tenantsdk.OrganizationListResponse	"organizations"
//	@Failure		401	{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	orgs, err := h.OrganizationService.ListFor(ctx, identity)
	if err != nil {
		log.Error("failed to list organizations", "err", err)
		writeServerError(w, "Failed to list organizations")
		return
	}

	out := tenantsdk.OrganizationListResponse{Organizations: make([]tenantsdk.Organization, 0, len(orgs))}
	for _, o := range orgs {
		out.Organizations = append(out.Organizations, renderOrganization(o))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSubscription godoc
//
//	@Summary		Subscription Update Endpoint
//	@Description	Set an organization's subscription status to active or inactive. An inactive subscription blocks every member of the organization regardless of role. Super-admin only.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Organization id"
//	@Param			request	body		tenantsdk.SubscriptionUpdateRequest	true	"Subscription update"
//	@Success		200		{object}	tenantsdk.Organization				"id, name, subscription_status"
//	@Failure		400		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{id}/subscription [put].
func (h *OrganizationsHandler) HandleSubscription(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	orgID := r.PathValue("id")

	var req tenantsdk.SubscriptionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	status, err := domain.ParseSubscriptionStatus(req.Status)
	if err != nil {
		writeInvalidRequest(w, "status must be active or inactive")
		return
	}

	if !h.require(w, r, domain.WildcardOrganization, domain.PermOrgManage) {
		return
	}

	org, err := h.OrganizationService.UpdateSubscription(ctx, orgID, status)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			writeOrganizationNotFound(w)
			return
		}
		log.Error("failed to update subscription", "err", err)
		writeServerError(w, "Failed to update subscription")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, renderOrganization(org))
}

// HandleMembersList godoc
//
//	@Summary		Member Listing Endpoint
//	@Description	List the role assignments in an organization.
//	@Tags			Organizations
//	@Produce		json
//	@Param			id	path		string							true	"Organization id"
//	@Success		200	{object}	tenantsdk.MemberListResponse	"members"
//	@Failure		403	{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	tenantsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{id}/members [get].
func (h *OrganizationsHandler) HandleMembersList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	orgID := r.PathValue("id")

	if !h.require(w, r, orgID, domain.PermMembersManage) {
		return
	}

	members, err := h.OrganizationService.Members(ctx, orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			writeOrganizationNotFound(w)
			return
		}
		log.Error("failed to list members", "err", err)
		writeServerError(w, "Failed to list members")
		return
	}

	out := tenantsdk.MemberListResponse{Members: make([]tenantsdk.Role, 0, len(members))}
	for _, m := range members {
		out.Members = append(out.Members, renderRole(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMemberAdd godoc
//
//	@Summary		Member Addition Endpoint
//	@Description	Assign a role to an existing principal, addressed by email, without going through the invite flow. The principal must already exist; super_admin is not assignable.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Organization id"
//	@Param			request	body		tenantsdk.MemberAddRequest	true	"Member request"
//	@Success		201		{object}	tenantsdk.Role				"user_id, organization_id, role_name"
//	@Failure		400		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	tenantsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{id}/members [post].
func (h *OrganizationsHandler) HandleMemberAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	orgID := r.PathValue("id")

	var req tenantsdk.MemberAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.RoleName == "" {
		writeInvalidRequest(w, "email and role_name are required")
		return
	}

	if !h.require(w, r, orgID, domain.PermMembersManage) {
		return
	}

	role, err := h.OrganizationService.AddMember(ctx, orgID, req.Email, req.RoleName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			writeInvalidRequest(w, "role_name is not an assignable role")
		case errors.Is(err, service.ErrOrganizationNotFound):
			writeOrganizationNotFound(w)
		case errors.Is(err, service.ErrPrincipalNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
				Error:            "principal_not_found",
				ErrorDescription: "No principal exists with this email",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusConflict, tenantsdk.ErrorResponse{
				Error:            "already_member",
				ErrorDescription: "Principal already holds a role in this organization",
			})
		default:
			log.Error("failed to add member", "err", err)
			writeServerError(w, "Failed to add member")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, renderRole(role))
}

// HandleSuspension godoc
//
//	@Summary		Member Suspension Endpoint
//	@Description	Suspend or reinstate a member's role. A suspended role keeps its row but contributes no permissions and blocks the member's access to the organization.
//	@Tags			Organizations
//	@Accept			json
//	@Param			id		path	string								true	"Organization id"
//	@Param			userID	path	string								true	"Member's principal id"
//	@Param			request	body	tenantsdk.SuspensionUpdateRequest	true	"Suspension update"
//	@Success		204		"no content"
//	@Failure		400		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	tenantsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/organizations/{id}/members/{userID}/suspension [put].
func (h *OrganizationsHandler) HandleSuspension(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	orgID := r.PathValue("id")
	userID := r.PathValue("userID")

	var req tenantsdk.SuspensionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w, "Invalid JSON body")
		return
	}

	if !h.require(w, r, orgID, domain.PermMembersManage) {
		return
	}

	if err := h.OrganizationService.SetMemberSuspended(ctx, orgID, userID, req.Suspended); err != nil {
		switch {
		case errors.Is(err, service.ErrOrganizationNotFound):
			writeOrganizationNotFound(w)
		case errors.Is(err, service.ErrPrincipalNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, tenantsdk.ErrorResponse{
				Error:            "principal_not_found",
				ErrorDescription: "No such member in this organization",
			})
		default:
			log.Error("failed to update suspension", "err", err)
			writeServerError(w, "Failed to update suspension")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
