package service

import (
	"context"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
)

// RevisionService exposes the revision log: history and restore. A restore
// never rewinds the version counter; it reinstates an old snapshot as a new
// highest version.
type RevisionService struct {
	revisionRepo  domain.RevisionRepository
	dashboardRepo domain.DashboardRepository
	access        *AccessService
}

// NewRevisionService creates a new revision service
func NewRevisionService(
	revisionRepo domain.RevisionRepository,
	dashboardRepo domain.DashboardRepository,
	access *AccessService,
) *RevisionService {
	return &RevisionService{
		revisionRepo:  revisionRepo,
		dashboardRepo: dashboardRepo,
		access:        access,
	}
}

// History retrieves a dashboard's revisions, oldest first. The caller needs
// at least view access.
func (s *RevisionService) History(ctx context.Context, userID, dashboardID uuid.UUID) ([]domain.RevisionSnapshot, error) {
	level, err := s.access.CanAccess(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}
	if level < domain.AccessView {
		return nil, domain.ErrAccessDenied
	}

	return s.revisionRepo.History(ctx, dashboardID)
}

// Restore sets the dashboard's live configuration to a prior snapshot and
// appends the restore as a new revision. The caller needs edit access.
func (s *RevisionService) Restore(ctx context.Context, userID, dashboardID uuid.UUID, version int64) (*domain.Dashboard, error) {
	level, err := s.access.CanAccess(ctx, userID, dashboardID)
	if err != nil {
		return nil, err
	}
	if level < domain.AccessEdit {
		return nil, domain.ErrAccessDenied
	}

	return s.dashboardRepo.Restore(ctx, dashboardID, version)
}
