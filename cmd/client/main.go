// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/MKhiriev/go-auth-gate/internal/client"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

func main() {
	level := os.Getenv("AUTH_GATE_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	log := logger.NewLogger("auth-gate-client", level)

	app, err := client.NewApp(os.Args[1:], os.Stdout, log)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client command failed")
	}
}
