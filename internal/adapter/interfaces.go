// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a typed client for the auth-gate HTTP API.
//
// [ServerAdapter] hides the envelope format and bearer-token handling from
// callers. Failed requests are returned as *[ResponseError], which unwraps to
// one of the sentinel errors in errors.go so callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// ServerAdapter defines communication with the auth-gate server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a successful Login.
	Token() string

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns the principal carried in the token subject.
	Login(ctx context.Context, account, password string) (models.Principal, error)

	// Version returns the server build metadata.
	Version(ctx context.Context) (models.VersionInfo, error)

	// Me returns the user owning the stored token.
	Me(ctx context.Context) (models.User, error)

	// ListUsers returns one page of users.
	ListUsers(ctx context.Context, page, pageSize uint64) (models.Page[models.User], error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// CreateUser registers a new account.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
}
