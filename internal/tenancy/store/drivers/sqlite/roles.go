package sqlite

import (
	"context"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = `user_id, organization_id, role_name, suspended, created_at`

func (r *rolesRepo) ListByUser(ctx context.Context, userID string) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE user_id = ? ORDER BY created_at ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows.Scan)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) GetByUserAndOrg(ctx context.Context, userID, orgID string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE user_id = ? AND organization_id = ?`,
		userID, orgID)
	role, err := scanRole(row.Scan)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListByOrg(ctx context.Context, orgID string) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE organization_id = ? ORDER BY created_at ASC`,
		orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows.Scan)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) Create(ctx context.Context, role domain.Role) error {
	if role.CreatedAt.IsZero() {
		role.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (user_id, organization_id, role_name, suspended, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		role.UserID, role.OrganizationID, string(role.Name), role.Suspended, role.CreatedAt,
	)
	return mapConflict(err)
}

func (r *rolesRepo) SetSuspended(ctx context.Context, userID, orgID string, suspended bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET suspended = ? WHERE user_id = ? AND organization_id = ?`,
		suspended, userID, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
