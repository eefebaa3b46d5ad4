// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
)

// errorKindMap translates service and store errors. Anything not listed is
// Internal.
var errorKindMap = []struct {
	target  error
	kind    ErrorKind
	message string
}{
	{service.ErrInvalidCredentials, KindCredentialRejected, msgCredentialRejected},
	{service.ErrTokenIsExpiredOrInvalid, KindUnauthenticated, msgUnauthenticated},
	{service.ErrNoPrincipal, KindUnauthenticated, msgUnauthenticated},
	{service.ErrInvalidDataProvided, KindValidationFailed, msgValidationFailed},

	{store.ErrAccountAlreadyExists, KindConflict, msgConflict},
	{store.ErrNoUserWasFound, KindNotFound, msgNotFound},
}

// toAPIError converts any error into an *APIError.
func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var violations validators.Violations
	if errors.As(err, &violations) && len(violations) > 0 {
		return NewValidationError(violations)
	}

	for _, m := range errorKindMap {
		if errors.Is(err, m.target) {
			return NewAPIError(m.kind, m.message, err)
		}
	}

	return NewAPIError(KindInternal, msgInternal, err)
}
