// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "errors"

var (
	ErrBrokerUnavailable = errors.New("message broker is unavailable")
	ErrPublishingEvent   = errors.New("failed to publish event")
)
