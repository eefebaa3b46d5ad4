// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the router. Middleware order per request: trace id, access
// log, panic recovery, gzip, timeout; protected routes additionally pass
// through auth before any extraction or validation runs.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(withTimeout(h.requestTimeout))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, NewAPIError(KindNotFound, msgNotFound, nil))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.me)
		r.Get("/api/users", h.listUsers)
		r.Post("/api/users", h.createUser)
		r.Get("/api/users/{id}", h.getUser)
	})

	return router
}
