package domain

// WildcardOrganization is the sentinel super-admins may select to act
// across all organizations. It is also the organization_id recorded on a
// super_admin role row, which belongs to no single organization.
const WildcardOrganization = "*"

// Selection is the explicit "current organization" value threaded into
// every guarded call. The identity service is the only writer; everything
// downstream treats it as read-only.
type Selection struct {
	OrganizationID string
	All            bool // wildcard selection, super-admins only
}

// SelectionAll is the wildcard selection meaning "all organizations".
var SelectionAll = Selection{All: true}

func SelectOrganization(id string) Selection {
	if id == WildcardOrganization {
		return SelectionAll
	}
	return Selection{OrganizationID: id}
}

// IsZero reports that no organization has been selected.
func (s Selection) IsZero() bool { return !s.All && s.OrganizationID == "" }

// String renders the selection for persistence and logging.
func (s Selection) String() string {
	if s.All {
		return WildcardOrganization
	}
	return s.OrganizationID
}
