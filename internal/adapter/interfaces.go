// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services dev-connector
// talks to.
//
// The only integration today is the GitHub REST API, reached through
// [GithubAdapter]. Transport failures and non-2xx responses are mapped to
// the sentinel values in errors.go so callers can use [errors.Is] without
// knowing anything about HTTP.
package adapter

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GithubAdapter fetches public data from GitHub.
type GithubAdapter interface {
	// GetUserRepos returns the five oldest public repositories of username.
	// A user GitHub does not know, or any other non-2xx answer, yields
	// [ErrGithubProfileNotFound]. A failed round trip yields
	// [ErrGithubUnavailable].
	GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error)
}
