package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// ShareRepository handles dashboard share data access
type ShareRepository struct {
	db *DB
}

// NewShareRepository creates a new share repository
func NewShareRepository(db *DB) *ShareRepository {
	return &ShareRepository{db: db}
}

// Grant upserts a share: re-granting updates the permission in place
func (r *ShareRepository) Grant(ctx context.Context, share *domain.DashboardShare) error {
	query := `
		INSERT INTO dashboard_shares (dashboard_id, user_id, permission, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (dashboard_id, user_id) DO UPDATE SET permission = excluded.permission
	`

	err := withRetry(ctx, func() error {
		_, err := r.db.conn.ExecContext(ctx, query,
			share.DashboardID,
			share.UserID,
			share.Permission,
			share.CreatedAt,
		)
		return err
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to grant share: %w", err)
	}

	return nil
}

// Revoke removes a share; revoking an absent share is a no-op
func (r *ShareRepository) Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error {
	query := `DELETE FROM dashboard_shares WHERE dashboard_id = ? AND user_id = ?`

	err := withRetry(ctx, func() error {
		_, err := r.db.conn.ExecContext(ctx, query, dashboardID, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to revoke share: %w", err)
	}

	return nil
}

// Get retrieves a share grant
func (r *ShareRepository) Get(ctx context.Context, dashboardID, userID uuid.UUID) (*domain.DashboardShare, error) {
	query := `
		SELECT dashboard_id, user_id, permission, created_at
		FROM dashboard_shares
		WHERE dashboard_id = ? AND user_id = ?
	`

	var share domain.DashboardShare
	err := r.db.conn.QueryRowContext(ctx, query, dashboardID, userID).Scan(
		&share.DashboardID,
		&share.UserID,
		&share.Permission,
		&share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get share: %w", err)
	}

	return &share, nil
}

// ListForDashboard retrieves all grants on a dashboard
func (r *ShareRepository) ListForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	query := `
		SELECT dashboard_id, user_id, permission, created_at
		FROM dashboard_shares
		WHERE dashboard_id = ?
		ORDER BY created_at
	`

	rows, err := r.db.conn.QueryContext(ctx, query, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var shares []domain.DashboardShare
	for rows.Next() {
		var share domain.DashboardShare
		if err := rows.Scan(&share.DashboardID, &share.UserID, &share.Permission, &share.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return shares, nil
}
