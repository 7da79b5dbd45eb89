// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/cache"
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/crypto"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/store"
)

// idGenerator produces identifiers for new rows.
type idGenerator interface {
	Generate() string
}

// Services groups every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	GithubService  GithubService
	PostService    PostService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// Dependencies are the infrastructure pieces services are built on.
type Dependencies struct {
	Repositories  *store.Repositories
	GithubAdapter adapter.GithubAdapter
	RepoCache     cache.RepoCache
	Dispatcher    EventDispatcher
	Metrics       *metrics.Metrics
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	repos := deps.Repositories

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	githubService := NewGithubCacheService(deps.RepoCache, logger).
		Wrap(NewGithubService(deps.GithubAdapter, logger))

	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, crypto.NewBcryptHasher(crypto.DefaultCost), deps.Metrics, cfg.App, logger),
		ProfileService: NewProfileService(repos.ProfileRepository, repos.UserRepository, logger),
		GithubService:  githubService,
		PostService:    NewPostService(repos.PostRepository, repos.UserRepository, deps.Dispatcher, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(repos.HealthChecker),
	}, nil
}
