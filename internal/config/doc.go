// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the auth-gate server configuration.
//
// Values come from environment variables, then command-line flags, then an
// optional JSON file; a later source overrides non-zero fields of an earlier
// one. Defaults fill whatever is still empty (token algorithm and lifetime,
// listen address, timeouts, storage driver) and the result is validated
// once: a missing token sign key or an unknown driver is a startup error.
//
// The entry point is [GetStructuredConfig].
package config
