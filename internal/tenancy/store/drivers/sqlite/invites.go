package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/causewayhq/causeway/internal/tenancy/domain"
)

type invitesRepo struct {
	db dbtx
}

const inviteColumns = `id, email, organization_id, role_name, invited_by, created_at, expires_at, accepted_at, cancelled_at`

func (r *invitesRepo) Create(ctx context.Context, inv domain.Invite) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invites (id, email, organization_id, role_name, invited_by, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, strings.ToLower(strings.TrimSpace(inv.Email)), inv.OrganizationID,
		string(inv.Role), inv.InvitedBy, inv.CreatedAt, inv.ExpiresAt,
	)
	return mapConflict(err)
}

func (r *invitesRepo) GetByID(ctx context.Context, id string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE id = ?`, id)
	inv, err := scanInvite(row.Scan)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) FindActive(
	ctx context.Context,
	email, orgID string,
	role domain.RoleName,
	now time.Time,
) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inviteColumns+` FROM invites
		 WHERE email = ? AND organization_id = ? AND role_name = ?
		   AND accepted_at IS NULL AND cancelled_at IS NULL AND expires_at > ?
		 ORDER BY created_at DESC LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)), orgID, string(role), now,
	)
	inv, err := scanInvite(row.Scan)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) ListByOrg(ctx context.Context, orgID string) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites WHERE organization_id = ? ORDER BY created_at DESC`,
		orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows.Next, rows.Scan, rows.Err)
}

func (r *invitesRepo) ListAll(ctx context.Context) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inviteColumns+` FROM invites ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvites(rows.Next, rows.Scan, rows.Err)
}

func collectInvites(
	next func() bool,
	scan func(dest ...any) error,
	rowsErr func() error,
) ([]domain.Invite, error) {
	var invites []domain.Invite
	for next() {
		inv, err := scanInvite(scan)
		if err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, rowsErr()
}

func (r *invitesRepo) CountsByOrganization(ctx context.Context, now time.Time) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT organization_id, COUNT(*) FROM invites
		 WHERE accepted_at IS NULL AND cancelled_at IS NULL AND expires_at > ?
		 GROUP BY organization_id`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			orgID string
			n     int
		)
		if err := rows.Scan(&orgID, &n); err != nil {
			return nil, err
		}
		counts[orgID] = n
	}
	return counts, rows.Err()
}

// MarkAccepted is the compare-and-swap acceptance transition. Zero
// affected rows means another caller already accepted (or the invite was
// cancelled); the caller decides what that means.
func (r *invitesRepo) MarkAccepted(ctx context.Context, inviteID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET accepted_at = ?
		 WHERE id = ? AND accepted_at IS NULL AND cancelled_at IS NULL`,
		at, inviteID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitesRepo) MarkCancelled(ctx context.Context, inviteID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invites SET cancelled_at = ?
		 WHERE id = ? AND accepted_at IS NULL AND cancelled_at IS NULL`,
		at, inviteID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitesRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invites
		 WHERE expires_at < ? AND accepted_at IS NULL AND cancelled_at IS NULL`,
		cutoff)
	return err
}
