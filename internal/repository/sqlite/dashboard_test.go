package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_Save(t *testing.T) {
	db := newTestDB(t)
	dashboardRepo := NewDashboardRepository(db)
	revisionRepo := NewRevisionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "alice")
	workspace := seedWorkspace(t, db, "Sales")
	dashboard := seedDashboard(t, db, owner.ID, workspace.ID)

	t.Run("round trip", func(t *testing.T) {
		got, err := dashboardRepo.GetByID(ctx, dashboard.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Q1 Revenue", got.Name)
		assert.Equal(t, []string{"month", "revenue"}, got.Columns)
		assert.Equal(t, domain.ChartTypeLine, got.ChartType)
		assert.Equal(t, owner.ID, *got.OwnerID)
		assert.Equal(t, workspace.ID, *got.WorkspaceID)
	})

	t.Run("save records exactly version 1", func(t *testing.T) {
		history, err := revisionRepo.History(ctx, dashboard.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, int64(1), history[0].Version)
		assert.Equal(t, dashboard.Config(), history[0].Config)
	})

	t.Run("same name creates an independent dashboard", func(t *testing.T) {
		second := seedDashboard(t, db, owner.ID, workspace.ID)
		assert.NotEqual(t, dashboard.ID, second.ID)

		history, err := revisionRepo.History(ctx, second.ID)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("unknown owner fails", func(t *testing.T) {
		bad := *dashboard
		bad.ID = uuid.New()
		missing := uuid.New()
		bad.OwnerID = &missing
		err := dashboardRepo.Save(ctx, &bad)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDashboardRepository_UpdateConfig(t *testing.T) {
	db := newTestDB(t)
	dashboardRepo := NewDashboardRepository(db)
	revisionRepo := NewRevisionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "alice")
	workspace := seedWorkspace(t, db, "Sales")
	dashboard := seedDashboard(t, db, owner.ID, workspace.ID)

	const updates = 3
	for i := 0; i < updates; i++ {
		columns := []string{"month", fmt.Sprintf("metric_%d", i)}
		version, err := dashboardRepo.UpdateConfig(ctx, dashboard.ID, columns, domain.ChartTypeBar)
		require.NoError(t, err)
		assert.Equal(t, int64(i+2), version)
	}

	t.Run("versions are contiguous from 1", func(t *testing.T) {
		history, err := revisionRepo.History(ctx, dashboard.ID)
		require.NoError(t, err)
		require.Len(t, history, updates+1)
		for i, rev := range history {
			assert.Equal(t, int64(i+1), rev.Version)
		}
	})

	t.Run("highest revision equals live config", func(t *testing.T) {
		live, err := dashboardRepo.GetByID(ctx, dashboard.ID)
		require.NoError(t, err)

		history, err := revisionRepo.History(ctx, dashboard.ID)
		require.NoError(t, err)
		latest := history[len(history)-1]
		assert.Equal(t, live.Config(), latest.Config)
	})

	t.Run("older snapshots are untouched", func(t *testing.T) {
		first, err := revisionRepo.Get(ctx, dashboard.ID, 1)
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, dashboard.Config(), first.Config)
	})

	t.Run("missing dashboard", func(t *testing.T) {
		_, err := dashboardRepo.UpdateConfig(ctx, uuid.New(), []string{"a"}, domain.ChartTypePie)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDashboardRepository_Restore(t *testing.T) {
	db := newTestDB(t)
	dashboardRepo := NewDashboardRepository(db)
	revisionRepo := NewRevisionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "alice")
	workspace := seedWorkspace(t, db, "Sales")
	dashboard := seedDashboard(t, db, owner.ID, workspace.ID)

	_, err := dashboardRepo.UpdateConfig(ctx, dashboard.ID, []string{"region", "units"}, domain.ChartTypeBar)
	require.NoError(t, err)

	restored, err := dashboardRepo.Restore(ctx, dashboard.ID, 1)
	require.NoError(t, err)

	t.Run("live config matches the restored snapshot", func(t *testing.T) {
		assert.Equal(t, dashboard.Config(), restored.Config())
	})

	t.Run("restore appends instead of rewinding", func(t *testing.T) {
		history, err := revisionRepo.History(ctx, dashboard.ID)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, int64(3), history[2].Version)
		assert.Equal(t, dashboard.Config(), history[2].Config)

		// The superseded configuration stays in the log
		assert.Equal(t, []string{"region", "units"}, history[1].Config.Columns)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := dashboardRepo.Restore(ctx, dashboard.ID, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing dashboard", func(t *testing.T) {
		_, err := dashboardRepo.Restore(ctx, uuid.New(), 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDashboardRepository_ListForUser(t *testing.T) {
	db := newTestDB(t)
	dashboardRepo := NewDashboardRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	sales := seedWorkspace(t, db, "Sales")
	marketing := seedWorkspace(t, db, "Marketing")

	inSales := seedDashboard(t, db, alice.ID, sales.ID)
	inMarketing := seedDashboard(t, db, alice.ID, marketing.ID)
	seedDashboard(t, db, bob.ID, sales.ID)

	t.Run("all owned dashboards", func(t *testing.T) {
		refs, err := dashboardRepo.ListForUser(ctx, alice.ID, nil)
		require.NoError(t, err)
		assert.Len(t, refs, 2)
	})

	t.Run("filtered by workspace", func(t *testing.T) {
		refs, err := dashboardRepo.ListForUser(ctx, alice.ID, &sales.ID)
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, inSales.ID, refs[0].ID)

		refs, err = dashboardRepo.ListForUser(ctx, alice.ID, &marketing.ID)
		require.NoError(t, err)
		require.Len(t, refs, 1)
		assert.Equal(t, inMarketing.ID, refs[0].ID)
	})

	t.Run("no dashboards yields empty", func(t *testing.T) {
		refs, err := dashboardRepo.ListForUser(ctx, uuid.New(), nil)
		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}

func TestDashboardRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	dashboardRepo := NewDashboardRepository(db)
	revisionRepo := NewRevisionRepository(db)
	shareRepo := NewShareRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "alice")
	grantee := seedUser(t, db, "bob")
	workspace := seedWorkspace(t, db, "Sales")
	dashboard := seedDashboard(t, db, owner.ID, workspace.ID)

	require.NoError(t, shareRepo.Grant(ctx, &domain.DashboardShare{
		DashboardID: dashboard.ID,
		UserID:      grantee.ID,
		Permission:  domain.PermissionEdit,
		CreatedAt:   time.Now().UTC(),
	}))

	require.NoError(t, dashboardRepo.Delete(ctx, dashboard.ID))

	t.Run("dashboard is gone", func(t *testing.T) {
		got, err := dashboardRepo.GetByID(ctx, dashboard.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("revisions cascade away", func(t *testing.T) {
		history, err := revisionRepo.History(ctx, dashboard.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("shares cascade away", func(t *testing.T) {
		share, err := shareRepo.Get(ctx, dashboard.ID, grantee.ID)
		require.NoError(t, err)
		assert.Nil(t, share)
	})

	t.Run("missing dashboard", func(t *testing.T) {
		err := dashboardRepo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

// TestDashboardRepository_SaveScenario walks the typical flow end to end:
// register, create a workspace, join it, save a dashboard, edit it twice,
// then restore the original configuration.
func TestDashboardRepository_SaveScenario(t *testing.T) {
	db := newTestDB(t)
	workspaceRepo := NewWorkspaceRepository(db)
	dashboardRepo := NewDashboardRepository(db)
	revisionRepo := NewRevisionRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	sales := seedWorkspace(t, db, "Sales")
	require.NoError(t, workspaceRepo.AddMember(ctx, &domain.Membership{
		WorkspaceID: sales.ID,
		UserID:      alice.ID,
		Role:        domain.RoleAdmin,
		CreatedAt:   time.Now().UTC(),
	}))

	dashboard := seedDashboard(t, db, alice.ID, sales.ID)

	_, err := dashboardRepo.UpdateConfig(ctx, dashboard.ID, []string{"month", "revenue", "region"}, domain.ChartTypeBar)
	require.NoError(t, err)
	_, err = dashboardRepo.UpdateConfig(ctx, dashboard.ID, []string{"region"}, domain.ChartTypePie)
	require.NoError(t, err)

	restored, err := dashboardRepo.Restore(ctx, dashboard.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"month", "revenue"}, restored.Columns)
	assert.Equal(t, domain.ChartTypeLine, restored.ChartType)

	history, err := revisionRepo.History(ctx, dashboard.ID)
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, history[0].Config, history[3].Config)
}
