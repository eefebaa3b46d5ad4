// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account as it is stored by the record store.
// PasswordHash is never exposed via JSON.
type User struct {
	// UserID is the unique identifier of the user (UUID v7 string).
	UserID string `json:"id"`

	// Account is the unique login name used during authentication.
	Account string `json:"account"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the self-describing Argon2id PHC string.
	PasswordHash string `json:"-"`

	// Phone is the optional mobile phone number.
	Phone *string `json:"phone,omitempty"`

	// Age is the optional age of the user.
	Age *int64 `json:"age,omitempty"`

	// Gender is the optional gender of the user.
	Gender *Gender `json:"gender,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal returns the identity carried in tokens issued for u.
func (u User) Principal() Principal {
	return Principal{ID: u.UserID, Name: u.Name}
}

// Credential is the projection of a [User] needed to authenticate a login
// attempt: identity plus the stored password hash.
type Credential struct {
	UserID       string
	Name         string
	PasswordHash string
}

// Principal returns the identity of the credential owner.
func (c Credential) Principal() Principal {
	return Principal{ID: c.UserID, Name: c.Name}
}

// CreateUserRequest carries the fields needed to register an account. The
// password is plaintext and never leaves the service layer.
type CreateUserRequest struct {
	Account  string
	Name     string
	Password string
	Phone    *string
	Age      *int64
	Gender   *Gender
}
