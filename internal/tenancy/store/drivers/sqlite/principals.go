package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

type principalsRepo struct {
	db dbtx
}

const principalColumns = `id, email, first_name, last_name, password_hash, active_org_id, created_at, updated_at`

func (r *principalsRepo) scan(row *sql.Row) (domain.Principal, error) {
	var (
		p         domain.Principal
		activeOrg sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.PasswordHash,
		&activeOrg, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Principal{}, mapNotFound(err)
	}
	p.ActiveOrgID = mapNullString(activeOrg)
	return p, nil
}

func (r *principalsRepo) GetByID(ctx context.Context, id string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+principalColumns+` FROM principals WHERE id = ?`, id)
	return r.scan(row)
}

func (r *principalsRepo) GetByEmail(ctx context.Context, email string) (domain.Principal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+principalColumns+` FROM principals WHERE email = ?`,
		strings.ToLower(strings.TrimSpace(email)))
	return r.scan(row)
}

func (r *principalsRepo) Create(ctx context.Context, p domain.Principal) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO principals (id, email, first_name, last_name, password_hash, active_org_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, strings.ToLower(strings.TrimSpace(p.Email)), p.FirstName, p.LastName,
		p.PasswordHash, mapStringNull(p.ActiveOrgID), p.CreatedAt, p.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *principalsRepo) UpdatePasswordHash(ctx context.Context, principalID, newHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE principals SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, time.Now().UTC(), principalID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *principalsRepo) UpdateActiveOrg(ctx context.Context, principalID, orgID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE principals SET active_org_id = ?, updated_at = ? WHERE id = ?`,
		mapStringNull(orgID), time.Now().UTC(), principalID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *principalsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
