// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoProfileForUser = errors.New("there is no profile for this user")

	ErrNotPostAuthor    = errors.New("user is not the author of the post")
	ErrNotCommentAuthor = errors.New("user may not delete this comment")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
