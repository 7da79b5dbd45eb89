// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitives used by the auth
// service. Passwords are never stored or logged in plain text.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks one-way password hashes.
type PasswordHasher interface {
	// Hash returns an encoded hash of password with a fresh salt.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. It returns
	// ErrPasswordMismatch for a wrong password and a different error when
	// hash itself is malformed.
	Compare(hash, password string) error
}
