// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthorizationScheme is returned for any scheme other
	// than Bearer.
	ErrUnsupportedAuthorizationScheme = errors.New("unsupported `Authorization` scheme")

	// ErrEmptyToken is returned when the Bearer scheme is present but the
	// token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	errEmptyBody    = errors.New("request body is empty")
	errTrailingData = errors.New("unexpected data after json value")
)

// Client-visible messages.
const (
	msgNotFound           = "Not Found"
	msgMethodNotAllowed   = "Method Not Allowed"
	msgMalformedPath      = "Invalid path parameters"
	msgMalformedQuery     = "Invalid query parameters"
	msgMalformedBody      = "Invalid json body"
	msgValidationFailed   = "Validation error"
	msgUnauthenticated    = "Unauthorized"
	msgCredentialRejected = "Account or Password is incorrect"
	msgConflict           = "Account already exists"
	msgInternal           = "Internal Server Error"
	msgTimeout            = "Request timed out"
)

// ErrorKind enumerates the failures the API can surface.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindMethodNotAllowed
	KindMalformedPath
	KindMalformedQuery
	KindMalformedBody
	KindValidationFailed
	KindUnauthenticated
	KindCredentialRejected
	KindConflict
)

var kindNames = map[ErrorKind]string{
	KindInternal:           "internal",
	KindNotFound:           "not_found",
	KindMethodNotAllowed:   "method_not_allowed",
	KindMalformedPath:      "malformed_path",
	KindMalformedQuery:     "malformed_query",
	KindMalformedBody:      "malformed_body",
	KindValidationFailed:   "validation_failed",
	KindUnauthenticated:    "unauthenticated",
	KindCredentialRejected: "credential_rejected",
	KindConflict:           "conflict",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

// Status returns the HTTP status code for k.
func (k ErrorKind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindMalformedPath, KindMalformedQuery, KindMalformedBody:
		return http.StatusBadRequest
	case KindValidationFailed:
		return http.StatusUnprocessableEntity
	case KindUnauthenticated, KindCredentialRejected:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the single error type rendered to clients. The wrapped cause
// is available to errors.Is/As and to logs but never serialized.
type APIError struct {
	Kind       ErrorKind
	Message    string
	Violations validators.Violations

	cause error
}

// NewAPIError builds an APIError of the given kind.
func NewAPIError(kind ErrorKind, message string, cause error) *APIError {
	return &APIError{Kind: kind, Message: message, cause: cause}
}

// NewValidationError wraps a non-empty violation list.
func NewValidationError(violations validators.Violations) *APIError {
	return &APIError{
		Kind:       KindValidationFailed,
		Message:    msgValidationFailed,
		Violations: violations,
		cause:      violations,
	}
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.cause.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// Status returns the HTTP status code of e.
func (e *APIError) Status() int {
	return e.Kind.Status()
}

// Response renders the client-visible envelope.
func (e *APIError) Response() models.ErrorResponse {
	resp := models.ErrorResponse{
		Code:    e.Status(),
		Message: e.Message,
	}
	for _, v := range e.Violations {
		resp.Violations = append(resp.Violations, models.ViolationResponse{Field: v.Field, Message: v.Message})
	}
	return resp
}
