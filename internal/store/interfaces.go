// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository is the record store for user accounts.
//
// Implementations return [ErrNoUserWasFound] for missing records and
// [ErrAccountAlreadyExists] when an account name is taken.
type UserRepository interface {
	// CreateUser persists user. UserID, PasswordHash and CreatedAt must be set
	// by the caller.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindCredentialByAccount fetches the credential projection used by login.
	FindCredentialByAccount(ctx context.Context, account string) (models.Credential, error)

	// FindUserByID fetches a user by its identifier.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns up to limit users ordered by creation time, skipping
	// the first offset.
	ListUsers(ctx context.Context, limit, offset uint64) ([]models.User, error)

	// CountUsers returns the total number of stored users.
	CountUsers(ctx context.Context) (uint64, error)
}
