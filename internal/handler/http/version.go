// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// getServerVersion handles GET /api/version.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, h.services.AppInfoService.GetVersionInfo(r.Context()), http.StatusOK)
}
