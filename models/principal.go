// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the authenticated identity attached to a request after its
// bearer token has been decoded, or produced by a successful login.
//
// Principal is a value type: it is built per operation and never shared
// between requests.
type Principal struct {
	// ID is the opaque unique identifier of the account.
	ID string `json:"id"`

	// Name is the display name of the account.
	Name string `json:"name"`
}
