// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/crypto"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

type idGenerator interface {
	Generate() string
}

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.CredentialHasher

	ids idGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.CredentialHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateUser hashes req.Password, assigns a time-ordered ID and persists the
// user. A taken account surfaces as store.ErrAccountAlreadyExists.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Account == "" || req.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	name := req.Name
	if name == "" {
		name = req.Account
	}

	user := models.User{
		UserID:       s.ids.Generate(),
		Account:      req.Account,
		Name:         name,
		PasswordHash: passwordHash,
		Phone:        req.Phone,
		Age:          req.Age,
		Gender:       req.Gender,
		CreatedAt:    s.now().UTC().Truncate(time.Microsecond),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("account", req.Account).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", created.UserID).Msg("user created")
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize uint64) (models.Page[models.User], error) {
	if page == 0 || pageSize == 0 {
		return models.Page[models.User]{}, ErrInvalidDataProvided
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("error counting users: %w", err)
	}

	users, err := s.userRepository.ListUsers(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("error listing users: %w", err)
	}

	return models.NewPage(page, pageSize, total, users), nil
}

func (s *userService) Me(ctx context.Context) (models.User, error) {
	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		return models.User{}, ErrNoPrincipal
	}
	return s.GetUser(ctx, principal.ID)
}

// EnsureBootstrapUser creates the configured bootstrap account on an empty
// store. It is a no-op when bootstrap is disabled or users already exist.
func (s *userService) EnsureBootstrapUser(ctx context.Context, cfg config.Bootstrap) error {
	if !cfg.Enabled() {
		return nil
	}

	total, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if total > 0 {
		s.logger.Debug().Uint64("users", total).Msg("store is not empty, skipping bootstrap user")
		return nil
	}

	user, err := s.CreateUser(ctx, models.CreateUserRequest{
		Account:  cfg.Account,
		Name:     cfg.Name,
		Password: cfg.Password,
	})
	if err != nil {
		return fmt.Errorf("error creating bootstrap user: %w", err)
	}

	s.logger.Info().Str("user_id", user.UserID).Str("account", user.Account).Msg("bootstrap user created")
	return nil
}
