// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

var (
	extractCreateUserParams = ValidJSON[CreateUserParams]()
	extractListUsersParams  = ValidQuery[ListUsersParams]()
	extractUserIDParams     = ValidPath[UserIDParams]()
)

// me handles GET /api/users/me.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Me(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, user, http.StatusOK)
}

// listUsers handles GET /api/users?page=&page_size=.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	params, err := extractListUsersParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.UserService.ListUsers(r.Context(), params.Page, params.PageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, page, http.StatusOK)
}

// getUser handles GET /api/users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	params, err := extractUserIDParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, user, http.StatusOK)
}

// createUser handles POST /api/users.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	params, err := extractCreateUserParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), params.ToRequest())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, user, http.StatusCreated)
}
