// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It wires the chi router, the request handlers and the middleware chain.
// Requests are decoded by typed extractors (path, query, JSON body) and
// validated before a handler runs; every failure is rendered through
// [APIError] as a uniform JSON envelope. Protected routes pass through bearer
// token authentication, which places the caller's principal in the request
// context.
package http
