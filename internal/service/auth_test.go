package service

import (
	"context"
	"testing"
	"time"

	"github.com/bounty-bunny/DataSage/internal/domain"
	"github.com/bounty-bunny/DataSage/internal/security"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestJWTManager() *security.JWTManager {
	return security.NewJWTManager("test-secret-key-with-32-chars!!", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, domain.UserCreate{Username: "alice", Password: "correct horse"})
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, domain.RoleViewer, user.Role)
		assert.NotEqual(t, uuid.Nil, user.ID)

		// Stored hash must verify against the original password
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateUsername)

		_, err := svc.Register(ctx, domain.UserCreate{Username: "alice", Password: "correct horse"})
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         domain.RoleViewer,
	}

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetByUsername", ctx, "alice").Return(stored, nil)

		user, err := svc.Authenticate(ctx, domain.UserLogin{Username: "alice", Password: "correct horse"})
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetByUsername", ctx, "alice").Return(stored, nil)

		_, err := svc.Authenticate(ctx, domain.UserLogin{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})

	t.Run("unknown user fails identically", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetByUsername", ctx, "nobody").Return(nil, nil)

		_, err := svc.Authenticate(ctx, domain.UserLogin{Username: "nobody", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredential)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: string(hash),
		Role:         domain.RoleViewer,
	}

	mockUserRepo := new(MockUserRepository)
	svc := NewAuthService(mockUserRepo, newTestJWTManager())

	mockUserRepo.On("GetByUsername", ctx, "alice").Return(stored, nil)
	mockUserRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	tokens, err := svc.Login(ctx, domain.UserLogin{Username: "alice", Password: "correct horse"})
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, int64((15 * time.Minute).Seconds()), tokens.ExpiresIn)

	// The refresh token must round-trip through Refresh
	refreshed, err := svc.Refresh(ctx, tokens.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	adminID := uuid.New()
	viewerID := uuid.New()
	targetID := uuid.New()

	admin := &domain.User{ID: adminID, Username: "root", Role: domain.RoleAdmin}
	viewer := &domain.User{ID: viewerID, Username: "alice", Role: domain.RoleViewer}

	t.Run("admin may change roles", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetByID", ctx, adminID).Return(admin, nil)
		mockUserRepo.On("UpdateRole", ctx, targetID, domain.RoleEditor).Return(nil)

		assert.NoError(t, svc.ChangeRole(ctx, adminID, targetID, domain.RoleEditor))
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("non-admin denied", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		mockUserRepo.On("GetByID", ctx, viewerID).Return(viewer, nil)

		err := svc.ChangeRole(ctx, viewerID, targetID, domain.RoleEditor)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		svc := NewAuthService(mockUserRepo, newTestJWTManager())

		err := svc.ChangeRole(ctx, adminID, targetID, domain.Role("owner"))
		assert.Error(t, err)
	})
}
