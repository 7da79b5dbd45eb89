// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/cache"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// GithubCacheService serves repository lists from a [cache.RepoCache] and
// falls through to the wrapped service on a miss. A broken cache is logged
// and bypassed, never surfaced to the caller.
type GithubCacheService struct {
	inner     GithubService
	repoCache cache.RepoCache

	logger *logger.Logger
}

func NewGithubCacheService(repoCache cache.RepoCache, logger *logger.Logger) GithubServiceWrapper {
	return &GithubCacheService{repoCache: repoCache, logger: logger}
}

func (c *GithubCacheService) GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	log := logger.FromContext(ctx)

	repos, found, err := c.repoCache.GetRepos(ctx, username)
	if err != nil {
		log.Warn().Err(err).Str("func", "GithubCacheService.GetUserRepos").Str("username", username).Msg("repo cache read failed")
	}
	if found {
		return repos, nil
	}

	repos, err = c.inner.GetUserRepos(ctx, username)
	if err != nil {
		return nil, err
	}

	if err = c.repoCache.SetRepos(ctx, username, repos); err != nil {
		log.Warn().Err(err).Str("func", "GithubCacheService.GetUserRepos").Str("username", username).Msg("repo cache write failed")
	}

	return repos, nil
}

func (c *GithubCacheService) Wrap(inner GithubService) GithubService {
	c.inner = inner
	return c
}
