package domain

import "time"

type Principal struct {
	ID           string
	Email        string // stored lowercased, unique
	FirstName    string
	LastName     string
	PasswordHash string // argon2 encoded; empty until the account sets one
	ActiveOrgID  string // persisted organization selection, re-validated on resolve
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account has completed provisioning.
// Principals created by an administrator ahead of their first login have
// no password hash until they redeem an invite.
func (p Principal) HasPassword() bool { return p.PasswordHash != "" }
