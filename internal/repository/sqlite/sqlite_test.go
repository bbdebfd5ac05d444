package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bounty-bunny/DataSage/internal/config"
	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a migrated database in a per-test temp directory
func newTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: time.Second,
	}

	db, err := NewDB(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return db
}

func seedUser(t *testing.T, db *DB, username string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: "x",
		Role:         domain.RoleViewer,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedWorkspace(t *testing.T, db *DB, name string) *domain.Workspace {
	t.Helper()

	workspace := &domain.Workspace{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, NewWorkspaceRepository(db).Create(context.Background(), workspace))

	return workspace
}

func seedDashboard(t *testing.T, db *DB, ownerID, workspaceID uuid.UUID) *domain.Dashboard {
	t.Helper()

	now := time.Now().UTC()
	dashboard := &domain.Dashboard{
		ID:          uuid.New(),
		Name:        "Q1 Revenue",
		OwnerID:     &ownerID,
		WorkspaceID: &workspaceID,
		Columns:     []string{"month", "revenue"},
		ChartType:   domain.ChartTypeLine,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewDashboardRepository(db).Save(context.Background(), dashboard))

	return dashboard
}
