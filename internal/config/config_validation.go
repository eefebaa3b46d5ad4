// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults].
const (
	DefaultTokenAlgorithm  = "HS256"
	DefaultTokenDuration   = time.Hour
	DefaultHTTPAddress     = ":8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultVersion         = "dev"
	DefaultLogLevel        = "debug"
)

// SupportedTokenAlgorithms lists the HMAC algorithms the token service accepts.
var SupportedTokenAlgorithms = []string{"HS256", "HS384", "HS512"}

var supportedDrivers = []string{DriverMemory, DriverPostgres, DriverSQLite}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenAlgorithm == "" {
		cfg.App.TokenAlgorithm = DefaultTokenAlgorithm
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.Bootstrap.Enabled() && cfg.App.Bootstrap.Name == "" {
		cfg.App.Bootstrap.Name = cfg.App.Bootstrap.Account
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverMemory
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if !slices.Contains(SupportedTokenAlgorithms, cfg.App.TokenAlgorithm) {
		return fmt.Errorf("%w: unsupported token algorithm %q", ErrInvalidAppConfigs, cfg.App.TokenAlgorithm)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.Bootstrap.Enabled() && cfg.App.Bootstrap.Password == "" {
		return fmt.Errorf("%w: bootstrap password is required", ErrInvalidAppConfigs)
	}

	if !slices.Contains(supportedDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DSN is required for %s", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
