package service

import (
	"context"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// DashboardService handles dashboard operations with access enforcement
type DashboardService struct {
	dashboardRepo domain.DashboardRepository
	access        *AccessService
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(dashboardRepo domain.DashboardRepository, access *AccessService) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		access:        access,
	}
}

// Save creates a new dashboard inside a workspace. It always creates a new
// row; re-saving under an existing name yields a second independent
// dashboard. Version 1 of the revision log is recorded in the same
// transaction.
func (s *DashboardService) Save(ctx context.Context, ownerID uuid.UUID, input domain.DashboardCreate) (*domain.Dashboard, error) {
	if len(input.Columns) == 0 {
		return nil, domain.ErrEmptyColumnSelection
	}
	if !input.ChartType.Valid() {
		return nil, domain.ErrInvalidChartType
	}

	now := time.Now().UTC()
	owner := ownerID
	workspace := input.WorkspaceID
	dashboard := &domain.Dashboard{
		ID:          uuid.New(),
		Name:        input.Name,
		OwnerID:     &owner,
		WorkspaceID: &workspace,
		Columns:     input.Columns,
		ChartType:   input.ChartType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.dashboardRepo.Save(ctx, dashboard); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// Get retrieves a dashboard; the caller needs at least view access
func (s *DashboardService) Get(ctx context.Context, userID, dashboardID uuid.UUID) (*domain.Dashboard, error) {
	level, err := s.access.CanAccess(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}
	if level < domain.AccessView {
		return nil, domain.ErrAccessDenied
	}

	dashboard, err := s.dashboardRepo.GetByID(ctx, dashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, domain.ErrNotFound
	}

	return dashboard, nil
}

// ListForUser retrieves dashboards owned by the user, optionally filtered
// to one workspace
func (s *DashboardService) ListForUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]domain.DashboardRef, error) {
	return s.dashboardRepo.ListForUser(ctx, userID, workspaceID)
}

// Update is the edit path: it overwrites the live configuration and appends
// the next revision. The caller needs edit access. Returns the new version.
func (s *DashboardService) Update(ctx context.Context, userID, dashboardID uuid.UUID, input domain.DashboardUpdate) (int64, error) {
	if len(input.Columns) == 0 {
		return 0, domain.ErrEmptyColumnSelection
	}
	if !input.ChartType.Valid() {
		return 0, domain.ErrInvalidChartType
	}

	level, err := s.access.CanAccess(ctx, userID, dashboardID)
	if err != nil {
		return 0, err
	}
	if level < domain.AccessEdit {
		return 0, domain.ErrAccessDenied
	}

	return s.dashboardRepo.UpdateConfig(ctx, dashboardID, input.Columns, input.ChartType)
}

// Delete removes a dashboard. Only the owner or a workspace admin may
// delete; share grantees may not, whatever their permission.
func (s *DashboardService) Delete(ctx context.Context, userID, dashboardID uuid.UUID) error {
	ok, err := s.access.CanDelete(ctx, userID, dashboardID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAccessDenied
	}

	return s.dashboardRepo.Delete(ctx, dashboardID)
}
