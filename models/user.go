// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// The password hash never leaves the server: it is excluded from JSON.
type User struct {
	// ID is the UUIDv7 identifier assigned at registration.
	ID string `json:"_id"`

	// Name is the display name shown next to posts and profiles.
	Name string `json:"name"`

	// Email is unique and stored lower-cased.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	Password string `json:"-"`

	// Avatar is the Gravatar URL derived from Email.
	Avatar string `json:"avatar"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"date"`
}

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// ValidationMessages returns the messages reported for failed rules.
func (RegisterRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"name":     "Name is required",
		"email":    "Please include a valid email",
		"password": "Please enter a password with 6 or more characters",
	}
}

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidationMessages returns the messages reported for failed rules.
func (LoginRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"email":    "Please include a valid email",
		"password": "Password is required",
	}
}
