// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the auth-gate API.
//
// It logs in with the given credentials through [adapter.ServerAdapter],
// runs a single command and prints the JSON result.
package client
