// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/adapter"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

const usage = `usage: auth-gate-client [flags] <command> [args]

commands:
  version                              print server build info
  me                                   print the logged-in user
  users [page] [page_size]             list users
  user <id>                            print one user
  create-user <account> <password> [name]
`

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingArgs    = errors.New("missing command arguments")
)

type App struct {
	server   adapter.ServerAdapter
	account  string
	password string
	command  []string
	out      io.Writer
	logger   *logger.Logger
}

// NewApp parses args (without the program name). The server URL and
// credentials default to AUTH_GATE_SERVER_URL, AUTH_GATE_ACCOUNT and
// AUTH_GATE_PASSWORD.
func NewApp(args []string, out io.Writer, log *logger.Logger) (*App, error) {
	fs := flag.NewFlagSet("auth-gate-client", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, usage)
		fs.PrintDefaults()
	}

	serverURL := fs.String("s", getenv("AUTH_GATE_SERVER_URL", "http://localhost:8080"), "server base URL")
	account := fs.String("u", os.Getenv("AUTH_GATE_ACCOUNT"), "account to log in with")
	password := fs.String("p", os.Getenv("AUTH_GATE_PASSWORD"), "password to log in with")
	timeout := fs.Duration("t", 15*time.Second, "request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, errMissingArgs
	}

	return &App{
		server: adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
			BaseURL: *serverURL,
			Timeout: *timeout,
		}, log),
		account:  *account,
		password: *password,
		command:  fs.Args(),
		out:      out,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	cmd, args := a.command[0], a.command[1:]

	if cmd == "version" {
		return a.print(a.server.Version(ctx))
	}

	principal, err := a.server.Login(ctx, a.account, a.password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Debug().Str("principal_id", principal.ID).Msg("client logged in")

	switch cmd {
	case "me":
		return a.print(a.server.Me(ctx))
	case "users":
		page, pageSize, err := pageArgs(args)
		if err != nil {
			return err
		}
		return a.print(a.server.ListUsers(ctx, page, pageSize))
	case "user":
		if len(args) < 1 {
			return errMissingArgs
		}
		return a.print(a.server.GetUser(ctx, args[0]))
	case "create-user":
		if len(args) < 2 {
			return errMissingArgs
		}
		req := models.CreateUserRequest{Account: args[0], Password: args[1]}
		if len(args) > 2 {
			req.Name = args[2]
		}
		return a.print(a.server.CreateUser(ctx, req))
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}
}

func (a *App) print(v any, err error) error {
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func pageArgs(args []string) (page, pageSize uint64, err error) {
	page, pageSize = 1, 10
	if len(args) > 0 {
		if page, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid page: %w", err)
		}
	}
	if len(args) > 1 {
		if pageSize, err = strconv.ParseUint(args[1], 10, 64); err != nil {
			return 0, 0, fmt.Errorf("invalid page size: %w", err)
		}
	}
	return page, pageSize, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
