package domain

// AccessState is the terminal outcome of the access guard for one
// protected action. Blocked states are ordinary values, not errors:
// callers render the reason and offer a sign-out affordance.
type AccessState string

const (
	AccessLoading       AccessState = "LOADING"
	AccessNoSession     AccessState = "NO_SESSION"
	AccessSuperAdminOK  AccessState = "SUPER_ADMIN_OK"
	AccessNoOrgSelected AccessState = "NO_ORG_SELECTED"
	AccessOrgNotFound   AccessState = "ORG_NOT_FOUND"
	AccessOrgInactive   AccessState = "ORG_INACTIVE"
	AccessNoRoleForOrg  AccessState = "NO_ROLE_FOR_ORG"
	AccessRoleSuspended AccessState = "ROLE_SUSPENDED"
	AccessOK            AccessState = "OK"
)

// Allowed reports whether the action may proceed.
func (s AccessState) Allowed() bool {
	return s == AccessOK || s == AccessSuperAdminOK
}

// Reason returns the human-readable block reason rendered to callers.
func (s AccessState) Reason() string {
	switch s {
	case AccessLoading:
		return "identity is still loading"
	case AccessNoSession:
		return "you are not signed in"
	case AccessSuperAdminOK, AccessOK:
		return ""
	case AccessNoOrgSelected:
		return "no organization is selected"
	case AccessOrgNotFound:
		return "the selected organization no longer exists"
	case AccessOrgInactive:
		return "this organization's subscription is inactive"
	case AccessNoRoleForOrg:
		return "you have no role in this organization"
	case AccessRoleSuspended:
		return "your role in this organization is suspended"
	default:
		return "access denied"
	}
}
