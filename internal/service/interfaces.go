// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/models"
)

// TokenService issues and verifies bearer session tokens.
//
// Implementations hold only immutable state and are safe for concurrent use.
type TokenService interface {
	// Encode signs a token whose subject identifies p. The principal's ID and
	// Name must both be non-empty.
	Encode(p models.Principal) (string, error)

	// Decode verifies the token signature, algorithm and required claims and
	// returns the embedded principal. Every failure matches
	// [ErrTokenIsExpiredOrInvalid].
	Decode(token string) (models.Principal, error)
}

// AuthService authenticates account/password pairs.
type AuthService interface {
	// Login verifies the credentials and returns a freshly issued token.
	// Unknown accounts and wrong passwords both yield [ErrInvalidCredentials].
	Login(ctx context.Context, account, password string) (string, error)
}

// UserService manages user accounts.
type UserService interface {
	// CreateUser hashes the password and persists a new account.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// GetUser fetches one user by ID.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns one page of users. page is 1-based.
	ListUsers(ctx context.Context, page, pageSize uint64) (models.Page[models.User], error)

	// Me returns the user behind the principal attached to ctx.
	Me(ctx context.Context) (models.User, error)

	// EnsureBootstrapUser seeds the configured account when bootstrap is
	// enabled and the store holds no users yet.
	EnsureBootstrapUser(ctx context.Context, cfg config.Bootstrap) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}
