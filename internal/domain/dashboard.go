package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChartType represents supported chart renderings
type ChartType string

const (
	ChartTypeBar     ChartType = "Bar"
	ChartTypeLine    ChartType = "Line"
	ChartTypePie     ChartType = "Pie"
	ChartTypeScatter ChartType = "Scatter"
)

// Valid reports whether the chart type is one of the enumerated values
func (c ChartType) Valid() bool {
	switch c {
	case ChartTypeBar, ChartTypeLine, ChartTypePie, ChartTypeScatter:
		return true
	}
	return false
}

// Dashboard is a saved, named selection of data columns plus a chart-type
// choice. Owner and workspace references go nil when the referenced row is
// deleted; the dashboard itself survives.
type Dashboard struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	WorkspaceID *uuid.UUID `json:"workspace_id,omitempty"`
	Columns     []string   `json:"columns"`
	ChartType   ChartType  `json:"chart_type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ChartConfig is the versioned part of a dashboard: everything a revision
// snapshot records and a restore reinstates.
type ChartConfig struct {
	Name      string    `json:"name"`
	Columns   []string  `json:"columns"`
	ChartType ChartType `json:"chart_type"`
}

// Config returns the dashboard's live configuration
func (d *Dashboard) Config() ChartConfig {
	return ChartConfig{
		Name:      d.Name,
		Columns:   d.Columns,
		ChartType: d.ChartType,
	}
}

// DashboardCreate represents dashboard creation data
type DashboardCreate struct {
	WorkspaceID uuid.UUID `json:"workspace_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=255"`
	Columns     []string  `json:"columns" validate:"required,min=1,dive,required"`
	ChartType   ChartType `json:"chart_type" validate:"required,oneof=Bar Line Pie Scatter"`
}

// DashboardUpdate represents the edit path: a new configuration that
// overwrites the live one and appends a revision
type DashboardUpdate struct {
	Columns   []string  `json:"columns" validate:"required,min=1,dive,required"`
	ChartType ChartType `json:"chart_type" validate:"required,oneof=Bar Line Pie Scatter"`
}

// DashboardRef is a dashboard listing entry
type DashboardRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DashboardRepository defines the interface for dashboard storage.
// Save, UpdateConfig and Restore each run as a single transaction that also
// maintains the revision log, so the highest revision always equals the
// live configuration.
type DashboardRepository interface {
	Save(ctx context.Context, dashboard *Dashboard) error
	GetByID(ctx context.Context, id uuid.UUID) (*Dashboard, error)
	ListForUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]DashboardRef, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, columns []string, chartType ChartType) (int64, error)
	Restore(ctx context.Context, id uuid.UUID, version int64) (*Dashboard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
