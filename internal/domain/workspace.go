package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Workspace represents a named collaborative container scoping dashboards
// and memberships
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkspaceCreate represents workspace creation data
type WorkspaceCreate struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Membership links a user to a workspace with a per-pair role
type Membership struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	UserID      uuid.UUID `json:"user_id"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserWorkspace is a workspace listing entry for one user
type UserWorkspace struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
	Role        Role      `json:"role"`
}

// WorkspaceRepository defines the interface for workspace storage
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *Workspace) error
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	// AddMember is idempotent: an existing (workspace, user) pair is left
	// untouched, including its role.
	AddMember(ctx context.Context, member *Membership) error
	GetMember(ctx context.Context, workspaceID, userID uuid.UUID) (*Membership, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]UserWorkspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
