// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the nested user object carried in the token payload:
//
//	{"user":{"id":"<uuid>"}}
type TokenUser struct {
	ID string `json:"id"`
}

// TokenClaims is the claim set of every issued token. Besides the nested
// user object it carries the registered iss, iat and exp claims.
type TokenClaims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
//
// UserID is a cached copy of the nested user.id claim.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the user.id claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}
