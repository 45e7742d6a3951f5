package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
	"github.com/causewayhq/causeway/internal/tenancy/store"

	_ "modernc.org/sqlite"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repos can be
// shared between the plain store and transaction-scoped stores.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling
// commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Rollback is safe to call after commit; this covers early returns.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Principals() store.Principals       { return &principalsRepo{db: s.db} }
func (s *Store) Organizations() store.Organizations { return &organizationsRepo{db: s.db} }
func (s *Store) Roles() store.Roles                 { return &rolesRepo{db: s.db} }
func (s *Store) Invites() store.Invites             { return &invitesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates sqlite uniqueness violations into the store
// sentinel so services can implement duplicate-insert semantics.
func mapConflict(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "constraint failed: UNIQUE") {
		return store.ErrAlreadyExists
	}
	return err
}

// requireRow maps an update that matched nothing to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func scanRole(scan func(dest ...any) error) (domain.Role, error) {
	var (
		r       domain.Role
		rawName string
	)
	if err := scan(&r.UserID, &r.OrganizationID, &rawName, &r.Suspended, &r.CreatedAt); err != nil {
		return domain.Role{}, err
	}
	name, err := domain.ParseRoleName(rawName)
	if err != nil {
		return domain.Role{}, err
	}
	r.Name = name
	return r, nil
}

func scanInvite(scan func(dest ...any) error) (domain.Invite, error) {
	var (
		inv        domain.Invite
		rawRole    string
		acceptedAt sql.NullTime
		cancelled  sql.NullTime
	)
	err := scan(
		&inv.ID, &inv.Email, &inv.OrganizationID, &rawRole, &inv.InvitedBy,
		&inv.CreatedAt, &inv.ExpiresAt, &acceptedAt, &cancelled,
	)
	if err != nil {
		return domain.Invite{}, err
	}
	role, err := domain.ParseRoleName(rawRole)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.Role = role
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.CancelledAt = mapNullTimePtr(cancelled)
	return inv, nil
}
