package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Permission represents a share grant level
type Permission string

const (
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

// Valid reports whether the permission is one of the enumerated values
func (p Permission) Valid() bool {
	return p == PermissionView || p == PermissionEdit
}

// AccessLevel is the effective access a user has on a dashboard, ordered so
// the maximum of several sources can be taken.
type AccessLevel int

const (
	AccessNone AccessLevel = iota
	AccessView
	AccessEdit
)

func (a AccessLevel) String() string {
	switch a {
	case AccessView:
		return "view"
	case AccessEdit:
		return "edit"
	}
	return "none"
}

// Level converts a share permission to its access level
func (p Permission) Level() AccessLevel {
	switch p {
	case PermissionEdit:
		return AccessEdit
	case PermissionView:
		return AccessView
	}
	return AccessNone
}

// DashboardShare grants a user access to a dashboard outside normal
// workspace membership
type DashboardShare struct {
	DashboardID uuid.UUID  `json:"dashboard_id"`
	UserID      uuid.UUID  `json:"user_id"`
	Permission  Permission `json:"permission"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ShareGrant represents share creation data
type ShareGrant struct {
	Permission Permission `json:"permission" validate:"omitempty,oneof=view edit"`
}

// ShareRepository defines the interface for share storage
type ShareRepository interface {
	// Grant upserts: re-granting updates the permission rather than erroring.
	Grant(ctx context.Context, share *DashboardShare) error
	// Revoke is a no-op when no grant exists.
	Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error
	Get(ctx context.Context, dashboardID, userID uuid.UUID) (*DashboardShare, error)
	ListForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]DashboardShare, error)
}
