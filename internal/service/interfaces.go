// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/dev-connector/models"
)

// AuthService registers users, checks credentials and issues and verifies
// tokens.
type AuthService interface {
	// RegisterUser creates the account and returns a token for it. A taken
	// email yields store.ErrUserAlreadyExists.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	// Login returns a token for valid credentials. An unknown email and a
	// wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService manages developer profiles. Operations on the caller's own
// profile report a missing profile as ErrNoProfileForUser.
type ProfileService interface {
	GetMyProfile(ctx context.Context, userID string) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error)
	UpsertProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	// DeleteAccount removes the profile, the posts and the user.
	DeleteAccount(ctx context.Context, userID string) error

	AddExperience(ctx context.Context, userID string, experience models.Experience) (models.Profile, error)
	DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error)
	AddEducation(ctx context.Context, userID string, education models.Education) (models.Profile, error)
	DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error)
}

// GithubService lists the public repositories of a GitHub user.
type GithubService interface {
	GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error)
}

// GithubServiceWrapper decorates a GithubService with additional behavior.
type GithubServiceWrapper interface {
	Wrap(GithubService) GithubService
}

// PostService manages posts, likes and comments. Every mutation that
// touches an existing post returns the post as it is afterwards.
type PostService interface {
	CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, postID string) (models.Post, error)
	// DeletePost yields ErrNotPostAuthor when userID did not write the post.
	DeletePost(ctx context.Context, userID, postID string) error
	ToggleLike(ctx context.Context, userID, postID string) (models.Post, error)
	AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error)
	// DeleteComment is allowed for the post author and the comment author.
	// Anyone else gets ErrNotCommentAuthor.
	DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}
