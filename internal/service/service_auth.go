// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// dummyPassword is hashed once at construction. Logins for unknown accounts
// verify against that hash so both failure paths cost one Argon2 run.
const dummyPassword = "auth-gate-dummy-password"

// authService is the concrete implementation of AuthService.
type authService struct {
	// userRepository is used for the single credential lookup per login.
	userRepository store.UserRepository

	hasher crypto.CredentialHasher
	tokens TokenService

	// dummyHash is verified against when the account does not exist.
	dummyHash string
}

// NewAuthService constructs an AuthService. It hashes a dummy password up
// front and fails if the hasher cannot produce one. Login logs through the
// request-scoped logger carried by ctx.
func NewAuthService(userRepository store.UserRepository, hasher crypto.CredentialHasher, tokens TokenService) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error hashing dummy password: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		dummyHash:      dummyHash,
	}, nil
}

// Login authenticates account/password and issues a token.
//
// Returns:
//   - ErrInvalidDataProvided if account or password is empty.
//   - ErrInvalidCredentials for an unknown account, a wrong password or a
//     stored hash that cannot be parsed.
//   - ctx.Err() if the request was cancelled after verification.
//   - a wrapped storage or token error otherwise.
func (a *authService) Login(ctx context.Context, account, password string) (string, error) {
	log := logger.FromContext(ctx)

	if account == "" || password == "" {
		return "", ErrInvalidDataProvided
	}

	credential, err := a.userRepository.FindCredentialByAccount(ctx, account)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// result discarded; the call only equalizes timing
		_, _ = a.hasher.Verify(password, a.dummyHash)
		log.Debug().Str("account", account).Msg("login for unknown account")
		return "", ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("account", account).Msg("credential lookup failed")
		return "", fmt.Errorf("credential lookup failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, credential.PasswordHash)
	if err != nil {
		log.Error().Err(err).Str("user_id", credential.UserID).Msg("stored password hash is unreadable")
		return "", ErrInvalidCredentials
	}
	if !ok {
		log.Debug().Str("user_id", credential.UserID).Msg("wrong password")
		return "", ErrInvalidCredentials
	}

	if err = ctx.Err(); err != nil {
		return "", err
	}

	token, err := a.tokens.Encode(credential.Principal())
	if err != nil {
		log.Err(err).Str("user_id", credential.UserID).Msg("error issuing token")
		return "", err
	}

	log.Info().Str("user_id", credential.UserID).Msg("user logged in")
	return token, nil
}
