// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Vetrov

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive, may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests only.
	// It is never persisted and never included in responses.
	Password string `json:"password,omitempty"`

	// PasswordHash is the argon2id-encoded password verifier stored in the
	// database. Excluded from JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table backing User.
func (u User) TableName() string {
	return "users"
}
