// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_hasher_mock.go -package=mock

// CredentialHasher turns plaintext passwords into self-describing hash
// strings and checks candidates against them.
//
// Implementations must be safe for concurrent use.
type CredentialHasher interface {
	// Hash derives a new hash for plain using a fresh random salt.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches stored. A malformed stored value
	// yields (false, error); callers must treat any error as a mismatch.
	Verify(plain, stored string) (bool, error)
}
