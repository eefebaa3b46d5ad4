// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// TokenLeeway is the clock-skew tolerance applied to exp and iat.
const TokenLeeway = 60 * time.Second

// tokenService is the JWT implementation of TokenService. The same HMAC key
// signs and verifies; only the configured algorithm is accepted on decode.
type tokenService struct {
	method  jwt.SigningMethod
	signKey []byte
	ttl     time.Duration
	leeway  time.Duration
	now     func() time.Time
}

// NewTokenService resolves the signing algorithm from cfg and returns a
// TokenService using now as its clock (time.Now when nil).
//
// Returns ErrTokenSignKeyIsEmpty for an empty key and
// ErrUnsupportedTokenAlgorithm for anything outside the HMAC family and
// ErrNegativeTokenDuration for a negative TTL. A zero TTL is honored: tokens
// expire at issuance and are accepted only within the leeway.
func NewTokenService(cfg config.App, now func() time.Time) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyIsEmpty
	}

	alg := cfg.TokenAlgorithm
	if alg == "" {
		alg = config.DefaultTokenAlgorithm
	}
	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTokenAlgorithm, alg)
	}

	if cfg.TokenDuration < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeTokenDuration, cfg.TokenDuration)
	}
	if now == nil {
		now = time.Now
	}

	return &tokenService{
		method:  method,
		signKey: []byte(cfg.TokenSignKey),
		ttl:     cfg.TokenDuration,
		leeway:  TokenLeeway,
		now:     now,
	}, nil
}

func (s *tokenService) Encode(p models.Principal) (string, error) {
	token, err := utils.GenerateJWTToken(p, s.method, s.signKey, s.now(), s.ttl)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Decode(token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}

	principal, err := utils.ValidateAndParseJWTToken(token, s.method, s.signKey, s.leeway, s.now)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return principal, nil
}
