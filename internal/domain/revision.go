package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RevisionSnapshot is an immutable recorded copy of a dashboard's
// configuration at one version. Versions per dashboard start at 1 and
// increase without gaps.
type RevisionSnapshot struct {
	ID          int64       `json:"id"`
	DashboardID uuid.UUID   `json:"dashboard_id"`
	Version     int64       `json:"version"`
	Config      ChartConfig `json:"config"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RevisionRepository defines the read side of the revision log. Writing
// happens inside DashboardRepository transactions so the write-through
// invariant cannot be broken by a partial failure.
type RevisionRepository interface {
	History(ctx context.Context, dashboardID uuid.UUID) ([]RevisionSnapshot, error)
	Get(ctx context.Context, dashboardID uuid.UUID, version int64) (*RevisionSnapshot, error)
}
