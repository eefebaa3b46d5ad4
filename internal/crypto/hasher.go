// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idVariant = "argon2id"

// Argon2Params configures an [Argon2idHasher]. The values are encoded into
// every produced hash, so changing them only affects new hashes.
type Argon2Params struct {
	// Memory cost in KiB.
	Memory uint32
	// Time is the number of passes over memory.
	Time uint32
	// Threads is the degree of parallelism.
	Threads uint8
	// KeyLen is the derived key length in bytes.
	KeyLen uint32
	// SaltLen is the random salt length in bytes.
	SaltLen uint32
}

// DefaultArgon2Params returns the OWASP minimum recommendation for argon2id:
// 19 MiB of memory, 2 iterations, 1 thread.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:  19 * 1024,
		Time:    2,
		Threads: 1,
		KeyLen:  32,
		SaltLen: 16,
	}
}

func (p Argon2Params) validate() error {
	if p.Time < 1 {
		return fmt.Errorf("%w: time must be >= 1, got %d", ErrInvalidOption, p.Time)
	}
	if p.Threads < 1 {
		return fmt.Errorf("%w: threads must be >= 1, got %d", ErrInvalidOption, p.Threads)
	}
	if p.Memory < 8*uint32(p.Threads) {
		return fmt.Errorf("%w: memory (%d KiB) must be >= 8*threads", ErrInvalidOption, p.Memory)
	}
	if p.KeyLen < 4 {
		return fmt.Errorf("%w: key length must be >= 4, got %d", ErrInvalidOption, p.KeyLen)
	}
	if p.SaltLen < 8 {
		return fmt.Errorf("%w: salt length must be >= 8, got %d", ErrInvalidOption, p.SaltLen)
	}
	return nil
}

// Argon2idHasher implements [CredentialHasher] with argon2id and the PHC
// string format:
//
//	$argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>
//
// Salt and hash use unpadded standard base64. Argon2idHasher is immutable
// after construction and safe for concurrent use.
type Argon2idHasher struct {
	params Argon2Params
	rand   io.Reader
}

// NewArgon2idHasher constructs an Argon2idHasher. Use [DefaultArgon2Params]
// for production settings.
func NewArgon2idHasher(params Argon2Params) (*Argon2idHasher, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &Argon2idHasher{params: params, rand: rand.Reader}, nil
}

// Hash implements [CredentialHasher].
func (h *Argon2idHasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("crypto: failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idVariant,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [CredentialHasher]. The cost parameters are read from
// stored, so hashes made with older settings still verify.
func (h *Argon2idHasher) Verify(plain, stored string) (bool, error) {
	p, err := decodePHC(stored)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(plain), p.salt, p.time, p.memory, p.threads, uint32(len(p.hash)))
	return subtle.ConstantTimeCompare(computed, p.hash) == 1, nil
}

// NeedsRehash reports whether stored was produced with parameters that differ
// from the hasher's current configuration.
func (h *Argon2idHasher) NeedsRehash(stored string) (bool, error) {
	p, err := decodePHC(stored)
	if err != nil {
		return false, err
	}
	return p.memory != h.params.Memory ||
		p.time != h.params.Time ||
		p.threads != h.params.Threads ||
		uint32(len(p.hash)) != h.params.KeyLen, nil
}

type phcParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	hash    []byte
}

func decodePHC(encoded string) (*phcParams, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, fmt.Errorf("%w: expected 5 segments", ErrInvalidHash)
	}

	if parts[1] != argon2idVariant {
		return nil, fmt.Errorf("%w: unsupported variant %q", ErrInvalidHash, parts[1])
	}

	version, ok := strings.CutPrefix(parts[2], "v=")
	if !ok {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidHash)
	}
	v, err := strconv.Atoi(version)
	if err != nil {
		return nil, fmt.Errorf("%w: version: %v", ErrInvalidHash, err)
	}
	if v != argon2.Version {
		return nil, fmt.Errorf("%w: %d", ErrIncompatibleVersion, v)
	}

	var p phcParams
	for _, kv := range strings.Split(parts[3], ",") {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("%w: malformed parameter %q", ErrInvalidHash, kv)
		}

		switch key {
		case "m":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: memory: %v", ErrInvalidHash, err)
			}
			p.memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: time: %v", ErrInvalidHash, err)
			}
			p.time = uint32(n)
		case "p":
			n, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("%w: threads: %v", ErrInvalidHash, err)
			}
			p.threads = uint8(n)
		default:
			return nil, fmt.Errorf("%w: unknown parameter %q", ErrInvalidHash, key)
		}
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return nil, fmt.Errorf("%w: missing m/t/p", ErrInvalidHash)
	}

	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	if p.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("%w: hash: %v", ErrInvalidHash, err)
	}
	if len(p.hash) == 0 {
		return nil, fmt.Errorf("%w: empty hash", ErrInvalidHash)
	}

	return &p, nil
}
