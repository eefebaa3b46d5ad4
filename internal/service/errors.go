// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid account or password")
	ErrNoPrincipal         = errors.New("no principal in context")

	ErrTokenSignKeyIsEmpty       = errors.New("token sign key is empty")
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token signing algorithm")
	ErrNegativeTokenDuration     = errors.New("token duration is negative")
	ErrTokenCreationFailed       = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid   = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
