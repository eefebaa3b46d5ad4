// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Extractor decodes a typed value from a request. Structural failures are
// returned as *APIError.
type Extractor[T any] func(r *http.Request) (T, error)

// paramsBinder is satisfied by *T when T binds itself from [validators.Params].
type paramsBinder[T any] interface {
	*T
	validators.ParamsBinder
}

// PathParams binds T from the chi route parameters of r. Binding errors
// become MalformedPath.
func PathParams[T any, PT paramsBinder[T]](r *http.Request) (T, error) {
	var v T
	if err := PT(&v).BindParams(routeParams(r)); err != nil {
		return v, NewAPIError(KindMalformedPath, msgMalformedPath, err)
	}
	return v, nil
}

// QueryParams binds T from the URL query of r. Binding errors become
// MalformedQuery.
func QueryParams[T any, PT paramsBinder[T]](r *http.Request) (T, error) {
	var v T
	if err := PT(&v).BindParams(validators.QueryParams(r.URL.Query())); err != nil {
		return v, NewAPIError(KindMalformedQuery, msgMalformedQuery, err)
	}
	return v, nil
}

// JSONBody decodes the request body into T. Syntax errors, type mismatches,
// an empty body and trailing data all become MalformedBody.
func JSONBody[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, NewAPIError(KindMalformedBody, msgMalformedBody, errEmptyBody)
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, NewAPIError(KindMalformedBody, msgMalformedBody, err)
	}
	if dec.More() {
		var zero T
		return zero, NewAPIError(KindMalformedBody, msgMalformedBody, errTrailingData)
	}

	return v, nil
}

// Valid runs extract and then T's rule set. Validation is skipped when
// extraction fails; otherwise every violation is reported in one
// ValidationFailed error.
func Valid[T validators.Validatable](extract Extractor[T]) Extractor[T] {
	return func(r *http.Request) (T, error) {
		v, err := extract(r)
		if err != nil {
			return v, err
		}

		if violations := v.Validate(); len(violations) > 0 {
			var zero T
			return zero, NewValidationError(violations)
		}

		return v, nil
	}
}

// ValidPath is Valid(PathParams[T]).
func ValidPath[T validators.Validatable, PT paramsBinder[T]]() Extractor[T] {
	return Valid(Extractor[T](PathParams[T, PT]))
}

// ValidQuery is Valid(QueryParams[T]).
func ValidQuery[T validators.Validatable, PT paramsBinder[T]]() Extractor[T] {
	return Valid(Extractor[T](QueryParams[T, PT]))
}

// ValidJSON is Valid(JSONBody[T]).
func ValidJSON[T validators.Validatable]() Extractor[T] {
	return Valid(Extractor[T](JSONBody[T]))
}

func routeParams(r *http.Request) validators.Params {
	rctx := chi.RouteContext(r.Context())
	return validators.NewParams(func(key string) (string, bool) {
		if rctx == nil {
			return "", false
		}
		for i, k := range rctx.URLParams.Keys {
			if k == key {
				return rctx.URLParams.Values[i], true
			}
		}
		return "", false
	})
}
