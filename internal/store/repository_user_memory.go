// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// memoryUserRepository is an in-process [UserRepository] for development and
// tests. Users are kept in insertion order.
type memoryUserRepository struct {
	mu        sync.RWMutex
	users     []models.User
	byID      map[string]int
	byAccount map[string]int
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		byID:      make(map[string]int),
		byAccount: make(map[string]int),
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byAccount[user.Account]; ok {
		return models.User{}, ErrAccountAlreadyExists
	}
	if _, ok := r.byID[user.UserID]; ok {
		return models.User{}, ErrAccountAlreadyExists
	}

	r.users = append(r.users, user)
	r.byID[user.UserID] = len(r.users) - 1
	r.byAccount[user.Account] = len(r.users) - 1

	return user, nil
}

func (r *memoryUserRepository) FindCredentialByAccount(ctx context.Context, account string) (models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return models.Credential{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byAccount[account]
	if !ok {
		return models.Credential{}, ErrNoUserWasFound
	}

	user := r.users[i]
	return models.Credential{UserID: user.UserID, Name: user.Name, PasswordHash: user.PasswordHash}, nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return r.users[i], nil
}

func (r *memoryUserRepository) ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := uint64(len(r.users))
	if offset >= total {
		return []models.User{}, nil
	}
	end := total
	if limit < total-offset {
		end = offset + limit
	}

	out := make([]models.User, end-offset)
	copy(out, r.users[offset:end])
	return out, nil
}

func (r *memoryUserRepository) CountUsers(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return uint64(len(r.users)), nil
}
