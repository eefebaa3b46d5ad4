// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessCode is the envelope code of every successful response.
const SuccessCode = 0

// SuccessMessage is the envelope message of every successful response.
const SuccessMessage = "success"

// Response is the envelope wrapping successful payloads:
//
//	{"code": 0, "message": "success", "data": ...}
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse wraps data into a success envelope.
func NewSuccessResponse(data any) Response {
	return Response{
		Code:    SuccessCode,
		Message: SuccessMessage,
		Data:    data,
	}
}

// ErrorResponse is the envelope used for every failed request.
// Code mirrors the HTTP status code of the response.
type ErrorResponse struct {
	Code       int                 `json:"code"`
	Message    string              `json:"message"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// ViolationResponse describes a single failed validation rule.
// Field uses dotted paths for nested structures (e.g. "profile.phone").
type ViolationResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Page is a single page of a listing.
type Page[T any] struct {
	Page     uint64 `json:"page"`
	PageSize uint64 `json:"page_size"`
	Total    uint64 `json:"total"`
	Items    []T    `json:"items"`
}

// NewPage constructs a [Page]. A nil items slice is rendered as an empty list.
func NewPage[T any](page, pageSize, total uint64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}
}
