// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidHash is returned when a stored hash is not a well-formed
	// argon2id PHC string.
	ErrInvalidHash = errors.New("crypto: invalid hash format")

	// ErrInvalidOption is returned when hasher parameters are out of range.
	ErrInvalidOption = errors.New("crypto: invalid hasher option")

	// ErrIncompatibleVersion is returned for hashes produced by a different
	// argon2 version.
	ErrIncompatibleVersion = errors.New("crypto: incompatible argon2 version")
)
