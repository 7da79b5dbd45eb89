// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrGithubProfileNotFound = errors.New("github profile not found")
	ErrGithubUnavailable     = errors.New("github is unavailable")
)
