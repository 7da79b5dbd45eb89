// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/dev-connector/internal/logger"

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	PostRepository    PostRepository
	HealthChecker     HealthChecker
}

// NewRepositories builds all repositories over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		HealthChecker:     db,
	}
}
