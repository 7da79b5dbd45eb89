// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0190a1b2-0000-7000-8000-000000000001"
	testOtherID = "0190a1b2-0000-7000-8000-000000000002"
	testPostID  = "0190a1b2-0000-7000-8000-0000000000a1"
	validToken  = "valid.jwt.token"
)

// ── AuthService ──

type fakeAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	getUserFn    func(ctx context.Context, userID string) (models.User, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return f.getUserFn(ctx, userID)
}

// ParseToken accepts validToken for testUserID unless overridden.
func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, tokenString)
	}
	if tokenString == validToken {
		return models.Token{SignedString: tokenString, UserID: testUserID}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// ── ProfileService ──

type fakeProfileService struct {
	getMyProfileFn       func(ctx context.Context, userID string) (models.Profile, error)
	listProfilesFn       func(ctx context.Context) ([]models.Profile, error)
	getProfileByUserIDFn func(ctx context.Context, userID string) (models.Profile, error)
	upsertProfileFn      func(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	deleteAccountFn      func(ctx context.Context, userID string) error
	addExperienceFn      func(ctx context.Context, userID string, experience models.Experience) (models.Profile, error)
	deleteExperienceFn   func(ctx context.Context, userID, experienceID string) (models.Profile, error)
	addEducationFn       func(ctx context.Context, userID string, education models.Education) (models.Profile, error)
	deleteEducationFn    func(ctx context.Context, userID, educationID string) (models.Profile, error)
}

func (f *fakeProfileService) GetMyProfile(ctx context.Context, userID string) (models.Profile, error) {
	return f.getMyProfileFn(ctx, userID)
}

func (f *fakeProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return f.listProfilesFn(ctx)
}

func (f *fakeProfileService) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	return f.getProfileByUserIDFn(ctx, userID)
}

func (f *fakeProfileService) UpsertProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	return f.upsertProfileFn(ctx, update)
}

func (f *fakeProfileService) DeleteAccount(ctx context.Context, userID string) error {
	return f.deleteAccountFn(ctx, userID)
}

func (f *fakeProfileService) AddExperience(ctx context.Context, userID string, experience models.Experience) (models.Profile, error) {
	return f.addExperienceFn(ctx, userID, experience)
}

func (f *fakeProfileService) DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error) {
	return f.deleteExperienceFn(ctx, userID, experienceID)
}

func (f *fakeProfileService) AddEducation(ctx context.Context, userID string, education models.Education) (models.Profile, error) {
	return f.addEducationFn(ctx, userID, education)
}

func (f *fakeProfileService) DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error) {
	return f.deleteEducationFn(ctx, userID, educationID)
}

// ── GithubService ──

type fakeGithubService struct {
	getUserReposFn func(ctx context.Context, username string) ([]models.GithubRepo, error)
}

func (f *fakeGithubService) GetUserRepos(ctx context.Context, username string) ([]models.GithubRepo, error) {
	return f.getUserReposFn(ctx, username)
}

// ── PostService ──

type fakePostService struct {
	createPostFn    func(ctx context.Context, userID string, req models.PostRequest) (models.Post, error)
	listPostsFn     func(ctx context.Context) ([]models.Post, error)
	getPostFn       func(ctx context.Context, postID string) (models.Post, error)
	deletePostFn    func(ctx context.Context, userID, postID string) error
	toggleLikeFn    func(ctx context.Context, userID, postID string) (models.Post, error)
	addCommentFn    func(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error)
	deleteCommentFn func(ctx context.Context, userID, postID, commentID string) (models.Post, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	return f.createPostFn(ctx, userID, req)
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return f.getPostFn(ctx, postID)
}

func (f *fakePostService) DeletePost(ctx context.Context, userID, postID string) error {
	return f.deletePostFn(ctx, userID, postID)
}

func (f *fakePostService) ToggleLike(ctx context.Context, userID, postID string) (models.Post, error) {
	return f.toggleLikeFn(ctx, userID, postID)
}

func (f *fakePostService) AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error) {
	return f.addCommentFn(ctx, userID, postID, req)
}

func (f *fakePostService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	return f.deleteCommentFn(ctx, userID, postID, commentID)
}

// ── AppInfoService / HealthService ──

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) Check(_ context.Context) error {
	return f.err
}

// ── helpers ──

var errUnexpected = errors.New("connection reset by peer")

// newTestServices fills every service with a fake; callers override the
// fields their test needs.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &fakeAuthService{},
		ProfileService: &fakeProfileService{},
		GithubService:  &fakeGithubService{},
		PostService:    &fakePostService{},
		AppInfoService: &fakeAppInfoService{version: "1.0.0"},
		HealthService:  &fakeHealthService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, metrics.New(), time.Second, logger.Nop())
}

// serve runs a request through the full router. An empty token sends no
// auth header.
func serve(t *testing.T, h *Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// serveWith sends a body-less request to an already built router, so state
// such as metrics is shared between calls.
func serveWith(router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// errorBody builds the single-message error envelope.
func errorBody(msg string) string {
	return `{"errors":[{"msg":"` + msg + `"}]}`
}

func requireJSON(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.JSONEq(t, body, rec.Body.String())
}
