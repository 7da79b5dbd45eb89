// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/cache"
	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/events"
	"github.com/MKhiriev/dev-connector/internal/handler"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/server"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/workers"
	"github.com/MKhiriev/dev-connector/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("dev-connector-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("dev-connector-server", cfg.App.LogLevel)
	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repoCache := newRepoCache(ctx, cfg.Storage.Cache, log)
	defer repoCache.Close()

	publisher := newPublisher(cfg.Events, log)
	defer publisher.Close()

	githubAdapter, err := adapter.NewGithubAdapter(cfg.Adapter.Github, cfg.Adapter.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating github adapter")
	}

	m := metrics.New()
	dispatcher := workers.NewEventDispatcher(publisher, cfg.Events.QueueSize, m.EventsDropped, log)

	services, err := service.NewServices(service.Dependencies{
		Repositories:  store.NewRepositories(db, log),
		GithubAdapter: githubAdapter,
		RepoCache:     repoCache,
		Dispatcher:    dispatcher,
		Metrics:       m,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := []workers.Worker{dispatcher}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}
	workersCtx, stopWorkers := context.WithCancel(ctx)
	ws := workers.NewWorkers(background...)
	ws.Run(workersCtx)

	// blocks until a termination signal
	srv.RunServer()

	stopWorkers()
	ws.Wait()
	log.Info().Msg("workers stopped")
}

// newRepoCache falls back to a no-op cache when Redis is not configured or
// not reachable. GitHub lookups then go upstream every time.
func newRepoCache(ctx context.Context, cfg config.Cache, log *logger.Logger) cache.RepoCache {
	if cfg.RedisAddress == "" {
		return cache.NewNopRepoCache()
	}

	repoCache, err := cache.NewRedisRepoCache(ctx, cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis is unavailable, github repos will not be cached")
		return cache.NewNopRepoCache()
	}
	return repoCache
}

// newPublisher falls back to a publisher that only logs events.
func newPublisher(cfg config.Events, log *logger.Logger) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.NewNopPublisher(log)
	}

	publisher, err := events.NewAMQPPublisher(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("message broker is unavailable, events will only be logged")
		return events.NewNopPublisher(log)
	}
	return publisher
}
