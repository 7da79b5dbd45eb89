// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with CreatedAt set by the
	// database. A taken email yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// DeleteUser removes the user together with the profile and posts
	// in a single transaction.
	DeleteUser(ctx context.Context, userID string) error
}

// ProfileRepository persists profiles and their experience and education
// entries. Every method returning a profile returns the full reloaded state.
type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	// UpsertProfile creates the profile of update.UserID with profileID, or
	// writes only the non-nil fields of update into the existing one.
	UpsertProfile(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error)
	AddExperience(ctx context.Context, userID string, experience models.Experience) (models.Profile, error)
	DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error)
	AddEducation(ctx context.Context, userID string, education models.Education) (models.Profile, error)
	DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error)
}

// PostRepository persists posts with their likes and comments.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	// ToggleLike removes like.UserID's like from the post or adds like when
	// there is none. It reports whether the post is liked afterwards.
	ToggleLike(ctx context.Context, postID string, like models.Like) (bool, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) error
	DeleteComment(ctx context.Context, postID, commentID string) error
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
