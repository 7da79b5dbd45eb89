// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/redis/go-redis/v9"
)

const reposKeyPrefix = "github:repos:"

type redisRepoCache struct {
	client *redis.Client
	ttl    time.Duration

	logger *logger.Logger
}

// NewRedisRepoCache connects to cfg.RedisAddress and pings it.
func NewRedisRepoCache(ctx context.Context, cfg config.Cache, logger *logger.Logger) (RepoCache, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logger.Err(err).Str("func", "NewRedisRepoCache").Str("address", cfg.RedisAddress).Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}
	logger.Info().Str("func", "NewRedisRepoCache").Msg("connected to redis successfully")

	return newRedisRepoCache(client, cfg.TTL, logger), nil
}

func newRedisRepoCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) *redisRepoCache {
	return &redisRepoCache{client: client, ttl: ttl, logger: logger}
}

// GitHub logins are case-insensitive.
func reposKey(username string) string {
	return reposKeyPrefix + strings.ToLower(strings.TrimSpace(username))
}

func (c *redisRepoCache) GetRepos(ctx context.Context, username string) ([]models.GithubRepo, bool, error) {
	raw, err := c.client.Get(ctx, reposKey(username)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	var repos []models.GithubRepo
	if err = json.Unmarshal(raw, &repos); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}

	return repos, true, nil
}

func (c *redisRepoCache) SetRepos(ctx context.Context, username string, repos []models.GithubRepo) error {
	raw, err := json.Marshal(repos)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}

	if err = c.client.Set(ctx, reposKey(username), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return nil
}

func (c *redisRepoCache) Close() error {
	return c.client.Close()
}
