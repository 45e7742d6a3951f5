package sqlite

import (
	"context"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

type organizationsRepo struct {
	db dbtx
}

func (r *organizationsRepo) GetByID(ctx context.Context, id string) (domain.Organization, error) {
	var (
		o         domain.Organization
		rawStatus string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, subscription_status, created_at, updated_at
		 FROM organizations WHERE id = ?`, id,
	).Scan(&o.ID, &o.Name, &rawStatus, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	status, err := domain.ParseSubscriptionStatus(rawStatus)
	if err != nil {
		return domain.Organization{}, err
	}
	o.SubscriptionStatus = status
	return o, nil
}

func (r *organizationsRepo) List(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, subscription_status, created_at, updated_at
		 FROM organizations ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var (
			o         domain.Organization
			rawStatus string
		)
		if err := rows.Scan(&o.ID, &o.Name, &rawStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		status, err := domain.ParseSubscriptionStatus(rawStatus)
		if err != nil {
			return nil, err
		}
		o.SubscriptionStatus = status
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *organizationsRepo) Create(ctx context.Context, o domain.Organization) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}
	if o.SubscriptionStatus == "" {
		o.SubscriptionStatus = domain.SubscriptionActive
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, subscription_status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, string(o.SubscriptionStatus), o.CreatedAt, o.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *organizationsRepo) UpdateSubscriptionStatus(
	ctx context.Context,
	orgID string,
	status domain.SubscriptionStatus,
) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET subscription_status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
