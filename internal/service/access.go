package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// AccessService computes effective dashboard access and manages explicit
// share grants. A grant applies regardless of the grantee's workspace
// membership or platform role.
type AccessService struct {
	dashboardRepo domain.DashboardRepository
	workspaceRepo domain.WorkspaceRepository
	shareRepo     domain.ShareRepository
}

// NewAccessService creates a new access service
func NewAccessService(
	dashboardRepo domain.DashboardRepository,
	workspaceRepo domain.WorkspaceRepository,
	shareRepo domain.ShareRepository,
) *AccessService {
	return &AccessService{
		dashboardRepo: dashboardRepo,
		workspaceRepo: workspaceRepo,
		shareRepo:     shareRepo,
	}
}

// Grant gives a user access to a dashboard. The empty permission defaults
// to view; re-granting upgrades or downgrades in place. Only a user with
// edit access may grant.
func (s *AccessService) Grant(ctx context.Context, actorID, dashboardID, granteeID uuid.UUID, permission domain.Permission) error {
	if permission == "" {
		permission = domain.PermissionView
	}
	if !permission.Valid() {
		return fmt.Errorf("invalid permission %q", permission)
	}

	level, err := s.CanAccess(ctx, actorID, dashboardID)
	if err != nil {
		return err
	}
	if level < domain.AccessEdit {
		return domain.ErrAccessDenied
	}

	share := &domain.DashboardShare{
		DashboardID: dashboardID,
		UserID:      granteeID,
		Permission:  permission,
		CreatedAt:   time.Now().UTC(),
	}

	return s.shareRepo.Grant(ctx, share)
}

// Revoke removes a user's share grant; absent grants are a no-op
func (s *AccessService) Revoke(ctx context.Context, actorID, dashboardID, granteeID uuid.UUID) error {
	level, err := s.CanAccess(ctx, actorID, dashboardID)
	if err != nil {
		return err
	}
	if level < domain.AccessEdit {
		return domain.ErrAccessDenied
	}

	return s.shareRepo.Revoke(ctx, dashboardID, granteeID)
}

// ListShares retrieves all grants on a dashboard
func (s *AccessService) ListShares(ctx context.Context, actorID, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	level, err := s.CanAccess(ctx, actorID, dashboardID)
	if err != nil {
		return nil, err
	}
	if level < domain.AccessView {
		return nil, domain.ErrAccessDenied
	}

	return s.shareRepo.ListForDashboard(ctx, dashboardID)
}

// CanAccess computes the user's effective access on a dashboard: the
// maximum of owner (edit), workspace admin (edit) and explicit share
// permission, or none.
func (s *AccessService) CanAccess(ctx context.Context, userID, dashboardID uuid.UUID) (domain.AccessLevel, error) {
	dashboard, err := s.dashboardRepo.GetByID(ctx, dashboardID)
	if err != nil {
		return domain.AccessNone, fmt.Errorf("failed to get dashboard: %w", err)
	}
	if dashboard == nil {
		return domain.AccessNone, domain.ErrNotFound
	}

	return s.levelFor(ctx, userID, dashboard)
}

// CanDelete reports whether the user may delete the dashboard: deletion is
// reserved for the owner and workspace admins, never for share grantees.
func (s *AccessService) CanDelete(ctx context.Context, userID, dashboardID uuid.UUID) (bool, error) {
	dashboard, err := s.dashboardRepo.GetByID(ctx, dashboardID)
	if err != nil {
		return false, fmt.Errorf("failed to get dashboard: %w", err)
	}
	if dashboard == nil {
		return false, domain.ErrNotFound
	}

	if dashboard.OwnerID != nil && *dashboard.OwnerID == userID {
		return true, nil
	}
	if dashboard.WorkspaceID != nil {
		member, err := s.workspaceRepo.GetMember(ctx, *dashboard.WorkspaceID, userID)
		if err != nil {
			return false, fmt.Errorf("failed to get member: %w", err)
		}
		if member != nil && member.Role == domain.RoleAdmin {
			return true, nil
		}
	}

	return false, nil
}

func (s *AccessService) levelFor(ctx context.Context, userID uuid.UUID, dashboard *domain.Dashboard) (domain.AccessLevel, error) {
	if dashboard.OwnerID != nil && *dashboard.OwnerID == userID {
		return domain.AccessEdit, nil
	}

	if dashboard.WorkspaceID != nil {
		member, err := s.workspaceRepo.GetMember(ctx, *dashboard.WorkspaceID, userID)
		if err != nil {
			return domain.AccessNone, fmt.Errorf("failed to get member: %w", err)
		}
		if member != nil && member.Role == domain.RoleAdmin {
			return domain.AccessEdit, nil
		}
	}

	share, err := s.shareRepo.Get(ctx, dashboard.ID, userID)
	if err != nil {
		return domain.AccessNone, fmt.Errorf("failed to get share: %w", err)
	}
	if share != nil {
		return share.Permission.Level(), nil
	}

	return domain.AccessNone, nil
}
