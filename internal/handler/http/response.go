// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
)

// writeError renders err as the error envelope. Internal causes are logged
// in full and replaced by a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	apiErr := toAPIError(err)

	if apiErr.Kind == KindInternal {
		log.Error().Err(err).Msg("internal error")
	} else {
		log.Debug().Err(err).Stringer("kind", apiErr.Kind).Msg("request rejected")
	}

	if _, werr := utils.WriteError(w, apiErr.Response()); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// writeSuccess renders data inside the success envelope.
func writeSuccess(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteSuccess(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
