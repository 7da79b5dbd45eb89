// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultDotEnvPath     = ".env"
	defaultTokenIssuer    = "dev-connector"
	defaultTokenDuration  = 360000 * time.Second
	defaultVersion        = "N/A"
	defaultLogLevel       = "debug"
	defaultHTTPAddress    = "localhost:5000"
	defaultRequestTimeout = 30 * time.Second
	defaultCacheTTL       = 10 * time.Minute
	defaultGithubBaseURL  = "https://api.github.com"
	defaultAdapterTimeout = 10 * time.Second
	defaultEventsExchange = "dev_connector_events"
	defaultEventsQueue    = 256
)

// defaultConfig returns the values used for every field left unset by the
// other sources. Secrets and the DSN have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			Cache: Cache{TTL: defaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			Github:         Github{BaseURL: defaultGithubBaseURL},
			RequestTimeout: defaultAdapterTimeout,
		},
		Events: Events{
			Exchange:  defaultEventsExchange,
			QueueSize: defaultEventsQueue,
		},
	}
}
