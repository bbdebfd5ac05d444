package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// WorkspaceService handles workspace operations
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
}

// NewWorkspaceService creates a new workspace service
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{workspaceRepo: workspaceRepo}
}

// Create creates a new workspace. The creator is NOT added as a member;
// callers wanting membership must call AddMember explicitly.
func (s *WorkspaceService) Create(ctx context.Context, input domain.WorkspaceCreate) (*domain.Workspace, error) {
	workspace := &domain.Workspace{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.workspaceRepo.Create(ctx, workspace); err != nil {
		return nil, err
	}

	return workspace, nil
}

// GetByID retrieves a workspace by ID
func (s *WorkspaceService) GetByID(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, domain.ErrNotFound
	}

	return workspace, nil
}

// AddMember adds a user to a workspace. The empty role defaults to editor.
// Adding an existing member is a no-op.
func (s *WorkspaceService) AddMember(ctx context.Context, userID, workspaceID uuid.UUID, role domain.Role) error {
	if role == "" {
		role = domain.RoleEditor
	}
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}

	member := &domain.Membership{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
	}

	return s.workspaceRepo.AddMember(ctx, member)
}

// ListForUser retrieves all workspaces the user belongs to
func (s *WorkspaceService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserWorkspace, error) {
	workspaces, err := s.workspaceRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}
