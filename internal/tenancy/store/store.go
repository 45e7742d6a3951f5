package store

import (
	"context"
	"errors"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and to actively stop callers from accidentally
// starting transactions within transactions.
type Store interface {
	Principals() Principals
	Organizations() Organizations
	Roles() Roles
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error,
	// the transaction is rolled back; otherwise it is committed. This is
	// the recommended way to run multi-step operations that must be
	// atomic (e.g. role insert plus invite acceptance).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Principals interface {
	// GetByID returns a principal by id.
	GetByID(ctx context.Context, id string) (domain.Principal, error)

	// GetByEmail looks a principal up case-insensitively.
	GetByEmail(ctx context.Context, email string) (domain.Principal, error)

	// Create inserts a new principal (id is provided by app via ULID).
	// Returns ErrAlreadyExists if the email is taken.
	Create(ctx context.Context, p domain.Principal) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, principalID, newHash string) error

	// UpdateActiveOrg persists the organization selection ("" clears it,
	// "*" is the super-admin wildcard).
	UpdateActiveOrg(ctx context.Context, principalID, orgID string) error

	// IsEmpty returns true if there are no principals (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

type Organizations interface {
	GetByID(ctx context.Context, id string) (domain.Organization, error)

	// List returns all organizations ordered by creation date.
	List(ctx context.Context) ([]domain.Organization, error)

	Create(ctx context.Context, o domain.Organization) error

	// UpdateSubscriptionStatus flips active/inactive and bumps updated_at.
	UpdateSubscriptionStatus(ctx context.Context, orgID string, status domain.SubscriptionStatus) error
}

type Roles interface {
	// ListByUser returns every role row for a principal.
	ListByUser(ctx context.Context, userID string) ([]domain.Role, error)

	// GetByUserAndOrg returns the single role row for (user, org).
	GetByUserAndOrg(ctx context.Context, userID, orgID string) (domain.Role, error)

	// ListByOrg returns all memberships of an organization.
	ListByOrg(ctx context.Context, orgID string) ([]domain.Role, error)

	// Create inserts a role row. The uniqueness constraint on
	// (user_id, organization_id) maps violations to ErrAlreadyExists so
	// callers can turn a duplicate insert into already-member success.
	Create(ctx context.Context, r domain.Role) error

	// SetSuspended flips the suspended flag for (user, org).
	SetSuspended(ctx context.Context, userID, orgID string, suspended bool) error
}

type Invites interface {
	Create(ctx context.Context, inv domain.Invite) error

	GetByID(ctx context.Context, id string) (domain.Invite, error)

	// FindActive returns the outstanding invite for
	// (email, organization, role): not accepted, not cancelled, not past
	// its row expiry. Used for the duplicate-active check at issue time.
	FindActive(ctx context.Context, email, orgID string, role domain.RoleName, now time.Time) (domain.Invite, error)

	// ListByOrg returns an organization's invites, newest first.
	ListByOrg(ctx context.Context, orgID string) ([]domain.Invite, error)

	// ListAll returns every invite, newest first (super-admin wildcard).
	ListAll(ctx context.Context) ([]domain.Invite, error)

	// CountsByOrganization returns outstanding-invite counts keyed by
	// organization id (the summary listing).
	CountsByOrganization(ctx context.Context, now time.Time) (map[string]int, error)

	// MarkAccepted performs the compare-and-swap acceptance:
	// SET accepted_at WHERE id = ? AND accepted_at IS NULL AND
	// cancelled_at IS NULL. It reports whether a row was updated; zero
	// rows means another caller got there first.
	MarkAccepted(ctx context.Context, inviteID string, at time.Time) (bool, error)

	// MarkCancelled mirrors MarkAccepted for cancellation.
	MarkCancelled(ctx context.Context, inviteID string, at time.Time) (bool, error)

	// DeleteExpiredBefore purges invites that expired before cutoff and
	// were never accepted (housekeeping).
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) error
}
