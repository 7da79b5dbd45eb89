// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json was passed")

	// ErrNoToken is returned by the auth middleware when the request carries
	// neither an "x-auth-token" nor an "Authorization" header.
	ErrNoToken = errors.New("no token, authorization denied")

	// ErrInvalidToken is returned when the token is malformed, expired or
	// signed with a different key.
	ErrInvalidToken = errors.New("token is not valid")
)
