// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

type githubService struct {
	githubAdapter adapter.GithubAdapter

	logger *logger.Logger
}

func NewGithubService(githubAdapter adapter.GithubAdapter, logger *logger.Logger) GithubService {
	return &githubService{githubAdapter: githubAdapter, logger: logger}
}

func (g *githubService) GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, adapter.ErrGithubProfileNotFound
	}

	return g.githubAdapter.GetUserRepos(ctx, username)
}
