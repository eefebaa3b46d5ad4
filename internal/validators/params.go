// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"strconv"
)

// Params gives typed, explicit access to string-keyed request parameters.
// Getters return nil for absent keys and an error wrapping
// [ErrMalformedParam] for present values of the wrong shape.
type Params struct {
	lookup func(key string) (string, bool)
}

// NewParams wraps a lookup function. The function reports whether key is
// present.
func NewParams(lookup func(key string) (string, bool)) Params {
	return Params{lookup: lookup}
}

// QueryParams exposes url.Values. A key is present when it appears at least
// once; the first value wins.
func QueryParams(values url.Values) Params {
	return NewParams(func(key string) (string, bool) {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return "", false
		}
		return v[0], true
	})
}

// MapParams exposes a plain map.
func MapParams(values map[string]string) Params {
	return NewParams(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

// String returns the raw value of key.
func (p Params) String(key string) *string {
	v, ok := p.lookup(key)
	if !ok {
		return nil
	}
	return &v
}

// Uint parses key as a base-10 unsigned integer.
func (p Params) Uint(key string) (*uint64, error) {
	v, ok := p.lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedParam, key, err)
	}
	return &n, nil
}

// UintOr is like Uint but returns def for an absent key.
func (p Params) UintOr(key string, def uint64) (uint64, error) {
	n, err := p.Uint(key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return def, nil
	}
	return *n, nil
}

// Int parses key as a base-10 signed integer.
func (p Params) Int(key string) (*int64, error) {
	v, ok := p.lookup(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedParam, key, err)
	}
	return &n, nil
}
