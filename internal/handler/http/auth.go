// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

var extractLoginParams = ValidJSON[LoginParams]()

// login handles POST /api/auth/login. On success the token is returned in
// the envelope data and in the Authorization response header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	params, err := extractLoginParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("account", *params.Account).Msg("login attempt")

	token, err := h.services.AuthService.Login(r.Context(), *params.Account, *params.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", bearerScheme+" "+token)
	writeSuccess(w, r, token, http.StatusOK)
}
