package domain

import "time"

// Invite is a pending, bearer-token-authenticated offer of membership.
// It is created once and mutated exactly once thereafter: either
// accepted_at or cancelled_at is set, never both. Rows are never deleted
// by the request path (housekeeping purges long-expired ones).
type Invite struct {
	ID             string
	Email          string // lowercased at issue time
	OrganizationID string
	Role           RoleName
	InvitedBy      string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	AcceptedAt     *time.Time
	CancelledAt    *time.Time
}

func (i Invite) IsAccepted() bool  { return i.AcceptedAt != nil }
func (i Invite) IsCancelled() bool { return i.CancelledAt != nil }

// IsExpired checks the invite row's own deadline. The row is
// authoritative over the token's embedded exp; both are checked.
func (i Invite) IsExpired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

// IsActive reports whether the invite can still be accepted.
func (i Invite) IsActive(now time.Time) bool {
	return !i.IsAccepted() && !i.IsCancelled() && !i.IsExpired(now)
}
