// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: cache ttl must be positive", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}

	if cfg.Adapter.Github.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%w: github base url is required", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs))
	}

	if cfg.Events.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: queue size must be positive", ErrInvalidEventsConfigs))
	}
	if cfg.Events.AMQPURL != "" && cfg.Events.Exchange == "" {
		errs = append(errs, fmt.Errorf("%w: exchange is required", ErrInvalidEventsConfigs))
	}

	return errors.Join(errs...)
}
