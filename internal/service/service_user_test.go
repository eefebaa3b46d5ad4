// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

var userTestNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (*userService, *mock.MockUserRepository, *mock.MockCredentialHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockCredentialHasher(ctrl)

	svc := NewUserService(repo, hasher, logger.Nop()).(*userService)
	svc.ids = fixedID("0190b8a2-7c1e-7000-8000-000000000001")
	svc.now = func() time.Time { return userTestNow }

	return svc, repo, hasher
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	phone := "13800138000"
	gender := models.GenderMale
	req := models.CreateUserRequest{Account: "bob", Name: "Bob", Password: "secret1", Phone: &phone, Gender: &gender}

	hasher.EXPECT().Hash("secret1").Return("$argon2id$bob", nil)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "0190b8a2-7c1e-7000-8000-000000000001", u.UserID)
			assert.Equal(t, "$argon2id$bob", u.PasswordHash)
			assert.Equal(t, userTestNow, u.CreatedAt)
			assert.Equal(t, &phone, u.Phone)
			assert.Nil(t, u.Age)
			return u, nil
		},
	)

	user, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Account)
	assert.Equal(t, "Bob", user.Name)
}

func TestUserService_CreateUser_NameDefaultsToAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil },
	)

	user, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Account: "carol", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Name)
}

func TestUserService_CreateUser_DuplicateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrAccountAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Account: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestUserService_CreateUser_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("entropy exhausted"))

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Account: "alice", Password: "secret1"})
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestUserService_CreateUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Account: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── GetUser / Me ─────────────────────────────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, "1").Return(models.User{UserID: "1", Account: "alice"}, nil)
	repo.EXPECT().FindUserByID(ctx, "2").Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.GetUser(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Account)

	_, err = svc.GetUser(ctx, "2")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)

	ctx := utils.WithPrincipal(context.Background(), models.Principal{ID: "1", Name: "Alice"})
	repo.EXPECT().FindUserByID(ctx, "1").Return(models.User{UserID: "1", Name: "Alice"}, nil)

	user, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", user.UserID)
}

func TestUserService_Me_NoPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestUserSvc(t, ctrl)

	_, err := svc.Me(context.Background())
	assert.ErrorIs(t, err, ErrNoPrincipal)
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers(t *testing.T) {
	tests := []struct {
		name           string
		page, pageSize uint64
		wantOffset     uint64
	}{
		{"first page", 1, 10, 0},
		{"third page", 3, 10, 20},
		{"single item pages", 5, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, _ := newTestUserSvc(t, ctrl)
			ctx := context.Background()

			items := []models.User{{UserID: "1"}}
			repo.EXPECT().CountUsers(ctx).Return(uint64(42), nil)
			repo.EXPECT().ListUsers(ctx, tt.pageSize, tt.wantOffset).Return(items, nil)

			page, err := svc.ListUsers(ctx, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, models.NewPage(tt.page, tt.pageSize, 42, items), page)
		})
	}
}

func TestUserService_ListUsers_EmptyStoreYieldsEmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)

	repo.EXPECT().CountUsers(gomock.Any()).Return(uint64(0), nil)
	repo.EXPECT().ListUsers(gomock.Any(), uint64(10), uint64(0)).Return(nil, nil)

	page, err := svc.ListUsers(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestUserService_ListUsers_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.ListUsers(ctx, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().CountUsers(ctx).Return(uint64(0), store.ErrScanningRow)
	_, err = svc.ListUsers(ctx, 1, 10)
	assert.ErrorIs(t, err, store.ErrScanningRow)

	repo.EXPECT().CountUsers(ctx).Return(uint64(1), nil)
	repo.EXPECT().ListUsers(ctx, uint64(10), uint64(0)).Return(nil, store.ErrExecutingQuery)
	_, err = svc.ListUsers(ctx, 1, 10)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── EnsureBootstrapUser ──────────────────────────────────────────────────────

func TestUserService_EnsureBootstrapUser(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestUserSvc(t, ctrl)

		assert.NoError(t, svc.EnsureBootstrapUser(context.Background(), config.Bootstrap{}))
	})

	t.Run("store not empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestUserSvc(t, ctrl)
		repo.EXPECT().CountUsers(gomock.Any()).Return(uint64(3), nil)

		assert.NoError(t, svc.EnsureBootstrapUser(context.Background(), config.Bootstrap{Account: "admin", Password: "secret1"}))
	})

	t.Run("empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, hasher := newTestUserSvc(t, ctrl)

		repo.EXPECT().CountUsers(gomock.Any()).Return(uint64(0), nil)
		hasher.EXPECT().Hash("secret1").Return("h", nil)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "admin", u.Account)
				assert.Equal(t, "Administrator", u.Name)
				return u, nil
			},
		)

		err := svc.EnsureBootstrapUser(context.Background(), config.Bootstrap{Account: "admin", Password: "secret1", Name: "Administrator"})
		assert.NoError(t, err)
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, repo, _ := newTestUserSvc(t, ctrl)
		repo.EXPECT().CountUsers(gomock.Any()).Return(uint64(0), store.ErrScanningRow)

		err := svc.EnsureBootstrapUser(context.Background(), config.Bootstrap{Account: "admin", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrScanningRow)
	})
}
