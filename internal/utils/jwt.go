// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/golang-jwt/jwt/v5"
)

// subjectSeparator joins the escaped id and name inside the "sub" claim.
const subjectSeparator = ":"

// maxTokenExpiry caps "exp" so that iat+ttl saturates instead of wrapping.
// 9999-12-31T23:59:59Z.
const maxTokenExpiry int64 = 253402300799

var (
	// ErrInvalidPrincipal is returned when a principal with an empty id or
	// name is encoded into a token subject.
	ErrInvalidPrincipal = errors.New("principal id and name must be non-empty")

	// ErrMalformedSubject is returned when a token subject does not split into
	// exactly two non-empty, correctly escaped parts.
	ErrMalformedSubject = errors.New("malformed token subject")

	// ErrMissingClaim is returned when a required registered claim is absent.
	ErrMissingClaim = errors.New("required claim is missing")
)

// EncodeSubject derives the "sub" claim from p as "{id}:{name}", where each
// part is query-escaped so that a separator inside id or name cannot make the
// split ambiguous.
func EncodeSubject(p models.Principal) (string, error) {
	if p.ID == "" || p.Name == "" {
		return "", ErrInvalidPrincipal
	}
	return url.QueryEscape(p.ID) + subjectSeparator + url.QueryEscape(p.Name), nil
}

// DecodeSubject reverses EncodeSubject.
func DecodeSubject(subject string) (models.Principal, error) {
	parts := strings.Split(subject, subjectSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.Principal{}, ErrMalformedSubject
	}

	id, err := url.QueryUnescape(parts[0])
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrMalformedSubject, err)
	}
	name, err := url.QueryUnescape(parts[1])
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrMalformedSubject, err)
	}

	return models.Principal{ID: id, Name: name}, nil
}

// NewPrincipalClaims builds the registered claims for p issued at now.
//
// "iat" is whole seconds since the epoch, clamped at zero. "exp" is
// iat + ttl (in whole seconds), saturating at [maxTokenExpiry], so exp >= iat
// always holds.
func NewPrincipalClaims(p models.Principal, now time.Time, ttl time.Duration) (*jwt.RegisteredClaims, error) {
	subject, err := EncodeSubject(p)
	if err != nil {
		return nil, err
	}

	iat := max(now.Unix(), 0)
	ttlSeconds := max(int64(ttl/time.Second), 0)

	exp := maxTokenExpiry
	if iat <= maxTokenExpiry-ttlSeconds {
		exp = iat + ttlSeconds
	}
	// keep exp >= iat even for clocks past the cap
	exp = max(exp, iat)

	return &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Unix(iat, 0)),
		ExpiresAt: jwt.NewNumericDate(time.Unix(exp, 0)),
	}, nil
}

// GenerateJWTToken creates a signed JWT carrying the principal in its subject.
//
// Parameters:
//
//	principal - identity to encode; id and name must be non-empty
//	method    - signing method (e.g. jwt.SigningMethodHS256)
//	signKey   - secret key used to sign the token
//	now       - issuance time
//	ttl       - how long the token remains valid
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(p, jwt.SigningMethodHS256, key, time.Now(), time.Hour)
func GenerateJWTToken(principal models.Principal, method jwt.SigningMethod, signKey []byte, now time.Time, ttl time.Duration) (string, error) {
	if method == nil || len(signKey) == 0 {
		return "", errors.New("invalid params for generating JWT Token")
	}

	claims, err := NewPrincipalClaims(principal, now, ttl)
	if err != nil {
		return "", err
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the principal.
//
// Validation includes:
//   - signature verification with signKey, accepting only method
//   - strict base64url decoding of every segment (non-zero padding bits in
//     the final character are rejected)
//   - presence of "sub", "iat" and "exp"
//   - expiry and issued-at checks against now() with the given leeway
//   - subject decoding into exactly (id, name)
//
// Audience and issuer are not checked.
func ValidateAndParseJWTToken(tokenString string, method jwt.SigningMethod, signKey []byte, leeway time.Duration, now func() time.Time) (models.Principal, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(now),
		jwt.WithStrictDecoding(),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return signKey, nil
	})
	if err != nil {
		return models.Principal{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.IssuedAt == nil {
		return models.Principal{}, fmt.Errorf("%w: iat", ErrMissingClaim)
	}
	if claims.Subject == "" {
		return models.Principal{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return DecodeSubject(claims.Subject)
}
