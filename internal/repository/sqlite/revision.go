package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// RevisionRepository reads the revision log. Revisions are written only by
// DashboardRepository transactions.
type RevisionRepository struct {
	db *DB
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(db *DB) *RevisionRepository {
	return &RevisionRepository{db: db}
}

// History retrieves all revisions of a dashboard, oldest first
func (r *RevisionRepository) History(ctx context.Context, dashboardID uuid.UUID) ([]domain.RevisionSnapshot, error) {
	query := `
		SELECT id, dashboard_id, version_number, snapshot, updated_at
		FROM dashboard_revisions
		WHERE dashboard_id = ?
		ORDER BY version_number
	`

	rows, err := r.db.conn.QueryContext(ctx, query, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	defer rows.Close()

	var revisions []domain.RevisionSnapshot
	for rows.Next() {
		rev, err := scanRevision(rows.Scan)
		if err != nil {
			return nil, err
		}
		revisions = append(revisions, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return revisions, nil
}

// Get retrieves one revision of a dashboard
func (r *RevisionRepository) Get(ctx context.Context, dashboardID uuid.UUID, version int64) (*domain.RevisionSnapshot, error) {
	query := `
		SELECT id, dashboard_id, version_number, snapshot, updated_at
		FROM dashboard_revisions
		WHERE dashboard_id = ? AND version_number = ?
	`

	rev, err := scanRevision(r.db.conn.QueryRowContext(ctx, query, dashboardID, version).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return rev, nil
}

func scanRevision(scan func(...any) error) (*domain.RevisionSnapshot, error) {
	var rev domain.RevisionSnapshot
	var snapshotJSON string

	if err := scan(&rev.ID, &rev.DashboardID, &rev.Version, &snapshotJSON, &rev.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan revision: %w", err)
	}
	if err := json.Unmarshal([]byte(snapshotJSON), &rev.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &rev, nil
}
