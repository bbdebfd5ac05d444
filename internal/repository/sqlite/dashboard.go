package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// DashboardRepository handles dashboard data access together with the write
// side of the revision log. Every mutation of a dashboard's configuration
// commits the matching revision row in the same transaction, so the highest
// revision always equals the live configuration.
type DashboardRepository struct {
	db *DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

const selectDashboard = `
	SELECT id, name, owner_user_id, workspace_id, columns, chart_type, created_at, updated_at
	FROM dashboards
`

func scanDashboard(row *sql.Row) (*domain.Dashboard, error) {
	var d domain.Dashboard
	var owner, workspace sql.NullString
	var columnsJSON string

	err := row.Scan(
		&d.ID,
		&d.Name,
		&owner,
		&workspace,
		&columnsJSON,
		&d.ChartType,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if owner.Valid {
		id, err := uuid.Parse(owner.String)
		if err != nil {
			return nil, fmt.Errorf("invalid owner id: %w", err)
		}
		d.OwnerID = &id
	}
	if workspace.Valid {
		id, err := uuid.Parse(workspace.String)
		if err != nil {
			return nil, fmt.Errorf("invalid workspace id: %w", err)
		}
		d.WorkspaceID = &id
	}
	if err := json.Unmarshal([]byte(columnsJSON), &d.Columns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal columns: %w", err)
	}

	return &d, nil
}

// Save inserts a new dashboard and its version-1 revision atomically
func (r *DashboardRepository) Save(ctx context.Context, dashboard *domain.Dashboard) error {
	columns, err := json.Marshal(dashboard.Columns)
	if err != nil {
		return fmt.Errorf("failed to marshal columns: %w", err)
	}
	snapshot, err := json.Marshal(dashboard.Config())
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = withRetry(ctx, func() error {
		tx, err := r.db.conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		_, err = tx.ExecContext(ctx, `
			INSERT INTO dashboards (id, name, owner_user_id, workspace_id, columns, chart_type, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			dashboard.ID,
			dashboard.Name,
			dashboard.OwnerID,
			dashboard.WorkspaceID,
			string(columns),
			dashboard.ChartType,
			dashboard.CreatedAt,
			dashboard.UpdatedAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO dashboard_revisions (dashboard_id, version_number, snapshot, updated_at)
			VALUES (?, 1, ?, ?)`,
			dashboard.ID,
			string(snapshot),
			dashboard.UpdatedAt,
		)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to save dashboard: %w", err)
	}

	return nil
}

// GetByID retrieves a dashboard by ID
func (r *DashboardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	row := r.db.conn.QueryRowContext(ctx, selectDashboard+` WHERE id = ?`, id)

	dashboard, err := scanDashboard(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard: %w", err)
	}

	return dashboard, nil
}

// ListForUser retrieves dashboards owned by a user, filtered by workspace
// when one is given, oldest first
func (r *DashboardRepository) ListForUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]domain.DashboardRef, error) {
	query := `
		SELECT id, name
		FROM dashboards
		WHERE owner_user_id = ?
	`
	args := []any{userID}
	if workspaceID != nil {
		query += ` AND workspace_id = ?`
		args = append(args, *workspaceID)
	}
	query += ` ORDER BY created_at, name`

	rows, err := r.db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboards: %w", err)
	}
	defer rows.Close()

	var refs []domain.DashboardRef
	for rows.Next() {
		var ref domain.DashboardRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("failed to scan dashboard: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return refs, nil
}

// UpdateConfig overwrites the live configuration and appends the next
// revision in one transaction. Returns the new version number.
func (r *DashboardRepository) UpdateConfig(ctx context.Context, id uuid.UUID, columns []string, chartType domain.ChartType) (int64, error) {
	columnsJSON, err := json.Marshal(columns)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal columns: %w", err)
	}

	var version int64
	err = withRetry(ctx, func() error {
		tx, err := r.db.conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		var name string
		err = tx.QueryRowContext(ctx, `SELECT name FROM dashboards WHERE id = ?`, id).Scan(&name)
		if err != nil {
			return err
		}

		snapshot, err := json.Marshal(domain.ChartConfig{
			Name:      name,
			Columns:   columns,
			ChartType: chartType,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		now := time.Now().UTC()
		version, err = appendRevision(ctx, tx, id, string(snapshot), now)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE dashboards SET columns = ?, chart_type = ?, updated_at = ? WHERE id = ?`,
			string(columnsJSON), chartType, now, id,
		)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("failed to update dashboard: %w", err)
	}

	return version, nil
}

// Restore reinstates a prior snapshot as the live configuration and records
// the restore as a new highest revision. History is never rewritten.
func (r *DashboardRepository) Restore(ctx context.Context, id uuid.UUID, version int64) (*domain.Dashboard, error) {
	err := withRetry(ctx, func() error {
		tx, err := r.db.conn.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		var snapshotJSON string
		err = tx.QueryRowContext(ctx,
			`SELECT snapshot FROM dashboard_revisions WHERE dashboard_id = ? AND version_number = ?`,
			id, version,
		).Scan(&snapshotJSON)
		if err != nil {
			return err
		}

		var cfg domain.ChartConfig
		if err := json.Unmarshal([]byte(snapshotJSON), &cfg); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
		columnsJSON, err := json.Marshal(cfg.Columns)
		if err != nil {
			return fmt.Errorf("failed to marshal columns: %w", err)
		}

		now := time.Now().UTC()
		if _, err := appendRevision(ctx, tx, id, snapshotJSON, now); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE dashboards SET name = ?, columns = ?, chart_type = ?, updated_at = ? WHERE id = ?`,
			cfg.Name, string(columnsJSON), cfg.ChartType, now, id,
		)
		if err != nil {
			return err
		}

		return tx.Commit()
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to restore dashboard: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a dashboard; shares and revisions cascade away
func (r *DashboardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM dashboards WHERE id = ?`

	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.conn.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete dashboard: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// appendRevision inserts the next revision row for a dashboard inside tx
func appendRevision(ctx context.Context, tx *sql.Tx, dashboardID uuid.UUID, snapshot string, at time.Time) (int64, error) {
	var next int64
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version_number), 0) + 1 FROM dashboard_revisions WHERE dashboard_id = ?`,
		dashboardID,
	).Scan(&next)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO dashboard_revisions (dashboard_id, version_number, snapshot, updated_at)
		 VALUES (?, ?, ?, ?)`,
		dashboardID, next, snapshot, at,
	)
	if err != nil {
		return 0, err
	}

	return next, nil
}
