// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache keeps short-lived copies of GitHub responses so repeated
// profile views do not hit the GitHub rate limit.
package cache

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repo_cache_mock.go -package=mock

// RepoCache stores the repository list of a GitHub user.
type RepoCache interface {
	// GetRepos reports found=false on a miss. Errors are reserved for a
	// broken backend or a corrupt entry.
	GetRepos(ctx context.Context, username string) (repos []models.GithubRepo, found bool, err error)
	SetRepos(ctx context.Context, username string, repos []models.GithubRepo) error
	Close() error
}
