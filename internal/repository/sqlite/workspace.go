package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// WorkspaceRepository handles workspace and membership data access
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, created_at)
		VALUES (?, ?, ?)
	`

	err := withRetry(ctx, func() error {
		_, err := r.db.conn.ExecContext(ctx, query,
			workspace.ID,
			workspace.Name,
			workspace.CreatedAt,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateWorkspaceName
		}
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return nil
}

// GetByID retrieves a workspace by ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	query := `
		SELECT id, name, created_at
		FROM workspaces
		WHERE id = ?
	`

	var workspace domain.Workspace
	err := r.db.conn.QueryRowContext(ctx, query, id).Scan(
		&workspace.ID,
		&workspace.Name,
		&workspace.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &workspace, nil
}

// AddMember adds a member to a workspace. Re-adding an existing member is a
// no-op: the stored role is kept.
func (r *WorkspaceRepository) AddMember(ctx context.Context, member *domain.Membership) error {
	query := `
		INSERT INTO workspace_members (workspace_id, user_id, role, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (workspace_id, user_id) DO NOTHING
	`

	err := withRetry(ctx, func() error {
		_, err := r.db.conn.ExecContext(ctx, query,
			member.WorkspaceID,
			member.UserID,
			member.Role,
			member.CreatedAt,
		)
		return err
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// GetMember retrieves a workspace membership
func (r *WorkspaceRepository) GetMember(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error) {
	query := `
		SELECT workspace_id, user_id, role, created_at
		FROM workspace_members
		WHERE workspace_id = ? AND user_id = ?
	`

	var member domain.Membership
	err := r.db.conn.QueryRowContext(ctx, query, workspaceID, userID).Scan(
		&member.WorkspaceID,
		&member.UserID,
		&member.Role,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

// ListForUser retrieves all workspaces a user belongs to, oldest first
func (r *WorkspaceRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserWorkspace, error) {
	query := `
		SELECT w.id, w.name, wm.role
		FROM workspaces w
		INNER JOIN workspace_members wm ON w.id = wm.workspace_id
		WHERE wm.user_id = ?
		ORDER BY w.created_at, w.name
	`

	rows, err := r.db.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []domain.UserWorkspace
	for rows.Next() {
		var ws domain.UserWorkspace
		if err := rows.Scan(&ws.WorkspaceID, &ws.Name, &ws.Role); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return workspaces, nil
}

// Delete deletes a workspace. Memberships cascade away; dashboards keep a
// null workspace reference.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM workspaces WHERE id = ?`

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
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
