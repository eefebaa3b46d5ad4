// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds every service from the immutable configuration. Any
// error here is a startup failure.
func NewServices(storages *store.Storages, hasher crypto.CredentialHasher, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App, time.Now)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, tokenService)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		TokenService:   tokenService,
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, hasher, logger),
		AppInfoService: appInfoService,
	}, nil
}
