// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

type nopRepoCache struct{}

// NewNopRepoCache returns a cache that never hits. It is used when no Redis
// address is configured.
func NewNopRepoCache() RepoCache {
	return nopRepoCache{}
}

func (nopRepoCache) GetRepos(context.Context, string) ([]models.GithubRepo, bool, error) {
	return nil, false, nil
}

func (nopRepoCache) SetRepos(context.Context, string, []models.GithubRepo) error {
	return nil
}

func (nopRepoCache) Close() error {
	return nil
}
