package service

import (
	"context"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWorkspaceRepository mocks the WorkspaceRepository interface
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member *domain.Membership) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) GetMember(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error) {
	args := m.Called(ctx, workspaceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *MockWorkspaceRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.UserWorkspace, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.UserWorkspace), args.Error(1)
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDashboardRepository mocks the DashboardRepository interface
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Save(ctx context.Context, dashboard *domain.Dashboard) error {
	args := m.Called(ctx, dashboard)
	return args.Error(0)
}

func (m *MockDashboardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dashboard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) ListForUser(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]domain.DashboardRef, error) {
	args := m.Called(ctx, userID, workspaceID)
	return args.Get(0).([]domain.DashboardRef), args.Error(1)
}

func (m *MockDashboardRepository) UpdateConfig(ctx context.Context, id uuid.UUID, columns []string, chartType domain.ChartType) (int64, error) {
	args := m.Called(ctx, id, columns, chartType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) Restore(ctx context.Context, id uuid.UUID, version int64) (*domain.Dashboard, error) {
	args := m.Called(ctx, id, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *MockDashboardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShareRepository mocks the ShareRepository interface
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Grant(ctx context.Context, share *domain.DashboardShare) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockShareRepository) Revoke(ctx context.Context, dashboardID, userID uuid.UUID) error {
	args := m.Called(ctx, dashboardID, userID)
	return args.Error(0)
}

func (m *MockShareRepository) Get(ctx context.Context, dashboardID, userID uuid.UUID) (*domain.DashboardShare, error) {
	args := m.Called(ctx, dashboardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardShare), args.Error(1)
}

func (m *MockShareRepository) ListForDashboard(ctx context.Context, dashboardID uuid.UUID) ([]domain.DashboardShare, error) {
	args := m.Called(ctx, dashboardID)
	return args.Get(0).([]domain.DashboardShare), args.Error(1)
}

// MockRevisionRepository mocks the RevisionRepository interface
type MockRevisionRepository struct {
	mock.Mock
}

func (m *MockRevisionRepository) History(ctx context.Context, dashboardID uuid.UUID) ([]domain.RevisionSnapshot, error) {
	args := m.Called(ctx, dashboardID)
	return args.Get(0).([]domain.RevisionSnapshot), args.Error(1)
}

func (m *MockRevisionRepository) Get(ctx context.Context, dashboardID uuid.UUID, version int64) (*domain.RevisionSnapshot, error) {
	args := m.Called(ctx, dashboardID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevisionSnapshot), args.Error(1)
}
