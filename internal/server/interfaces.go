// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns early with an error
	// when the listener cannot be started.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting at most the configured
	// shutdown timeout for in-flight requests.
	Shutdown() error
}
