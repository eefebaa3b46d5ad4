// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrValidationFailed    = errors.New("validation failed")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrNoToken = errors.New("no token in login response")
)

// ResponseError is a non-2xx response decoded from the error envelope.
type ResponseError struct {
	Status     int
	Message    string
	Violations []models.ViolationResponse

	kind error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%v: http %d: %s", e.kind, e.Status, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
