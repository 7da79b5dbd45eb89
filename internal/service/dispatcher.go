// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/dev-connector/models"

//go:generate mockgen -source=dispatcher.go -destination=../mock/event_dispatcher_mock.go -package=mock

// EventDispatcher accepts domain events for asynchronous publishing.
// Dispatch must not block.
type EventDispatcher interface {
	Dispatch(event models.Event) error
}
