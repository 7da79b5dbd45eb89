// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-resty/resty/v2"
)

const (
	reposPerPage = "5"
	reposSort    = "created:asc"
)

type githubAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewGithubAdapter constructs a [GithubAdapter] for the API at
// githubCfg.BaseURL. Every request is bounded by timeout.
//
// Returns an error if the base URL is empty or cannot be parsed.
func NewGithubAdapter(githubCfg config.Github, timeout time.Duration, logger *logger.Logger) (GithubAdapter, error) {
	baseURL, err := normalizeBaseURL(githubCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github base url: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating github adapter")

	return &githubAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		token:  strings.TrimSpace(githubCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUserRepos implements [GithubAdapter].
func (g *githubAdapter) GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	log := logger.FromContext(ctx)

	repos := make([]models.GithubRepo, 0, 5)
	resp, err := g.request(ctx).
		SetPathParam("username", username).
		SetQueryParams(map[string]string{
			"per_page": reposPerPage,
			"sort":     reposSort,
		}).
		ForceContentType("application/json").
		SetResult(&repos).
		Get("/users/{username}/repos")
	if err != nil {
		log.Err(err).Str("func", "githubAdapter.GetUserRepos").Str("username", username).Msg("github request failed")
		return nil, fmt.Errorf("%w: %w", ErrGithubUnavailable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Debug().Str("func", "githubAdapter.GetUserRepos").Str("username", username).
			Int("status", resp.StatusCode()).Msg("github answered with non-2xx status")
		return nil, err
	}

	return repos, nil
}

func (g *githubAdapter) request(ctx context.Context) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/vnd.github+json")
	if g.token != "" {
		req.SetHeader("Authorization", "token "+g.token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrGithubProfileNotFound, resp.StatusCode(), body)
}
