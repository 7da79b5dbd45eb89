// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	postColumns    = []string{"id", "user_id", "text", "name", "avatar", "created_at"}
	likeColumns    = []string{"id", "post_id", "user_id"}
	commentColumns = []string{"id", "post_id", "user_id", "text", "name", "avatar", "created_at"}
)

func newTestPostRepo(t *testing.T) (PostRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewPostRepository(db, logger.Nop()), mock
}

// ── CreatePost ───────────────────────────────────────────────────────────────

func TestCreatePost_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now().UTC()
	post := models.Post{ID: testPostID, UserID: testUserID, Text: "hello", Name: "John", Avatar: "//a"}

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(testPostID, testUserID, "hello", "John", "//a").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := repo.CreatePost(context.Background(), post)

	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NotNil(t, created.Likes)
	assert.NotNil(t, created.Comments)
}

func TestCreatePost_Error(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("INSERT INTO posts").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePost(context.Background(), models.Post{ID: testPostID})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── ListPosts / GetPost ──────────────────────────────────────────────────────

func TestListPosts_AttachesLikesAndComments(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now().UTC()
	older := "0190a1b2-0000-7000-8000-0000000000b0"

	mock.ExpectQuery("FROM posts").
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(testPostID, testUserID, "newest", "John", "", now).
			AddRow(older, testOtherID, "older", "Jane", "", now.Add(-time.Hour)))
	mock.ExpectQuery("FROM post_likes").
		WithArgs(testPostID, older).
		WillReturnRows(sqlmock.NewRows(likeColumns).AddRow("l1", older, testUserID))
	mock.ExpectQuery("FROM post_comments").
		WithArgs(testPostID, older).
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow("c1", testPostID, testOtherID, "nice", "Jane", "", now))

	posts, err := repo.ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newest", posts[0].Text)
	assert.Empty(t, posts[0].Likes)
	require.Len(t, posts[0].Comments, 1)
	assert.Equal(t, "nice", posts[0].Comments[0].Text)
	assert.Equal(t, []models.Like{{ID: "l1", UserID: testUserID}}, posts[1].Likes)
	assert.Empty(t, posts[1].Comments)
}

func TestListPosts_NoPostsSkipsChildQueries(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("FROM posts").WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.ListPosts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetPost_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("FROM posts").WithArgs(testPostID).WillReturnRows(sqlmock.NewRows(postColumns))

	_, err := repo.GetPost(context.Background(), testPostID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPost_LikesQueryError(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("FROM posts").
		WithArgs(testPostID).
		WillReturnRows(sqlmock.NewRows(postColumns).AddRow(testPostID, testUserID, "t", "", "", time.Now()))
	mock.ExpectQuery("FROM post_likes").WillReturnError(errors.New("db down"))

	_, err := repo.GetPost(context.Background(), testPostID)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── DeletePost ───────────────────────────────────────────────────────────────

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)
			mock.ExpectExec("DELETE FROM posts").
				WithArgs(testPostID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeletePost(context.Background(), testPostID)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── ToggleLike ───────────────────────────────────────────────────────────────

func TestToggleLike_AddsLike(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testPostID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testPostID))
	mock.ExpectExec("DELETE FROM post_likes").
		WithArgs(testPostID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO post_likes").
		WithArgs(testEntryID, testPostID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(context.Background(), testPostID, models.Like{ID: testEntryID, UserID: testUserID})

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLike_RemovesExistingLike(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testPostID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testPostID))
	mock.ExpectExec("DELETE FROM post_likes").
		WithArgs(testPostID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(context.Background(), testPostID, models.Like{ID: testEntryID, UserID: testUserID})

	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(testPostID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.ToggleLike(context.Background(), testPostID, models.Like{ID: testEntryID, UserID: testUserID})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestToggleLike_RetriesDeadlock(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testPostID))
	mock.ExpectExec("DELETE FROM post_likes").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO post_likes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	liked, err := repo.ToggleLike(context.Background(), testPostID, models.Like{ID: testEntryID, UserID: testUserID})

	require.NoError(t, err)
	assert.True(t, liked)
}

// ── comments ─────────────────────────────────────────────────────────────────

func TestAddComment_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	comment := models.Comment{ID: testEntryID, UserID: testUserID, Text: "hi", Name: "John", Avatar: "//a"}

	mock.ExpectExec("INSERT INTO post_comments").
		WithArgs(testEntryID, testPostID, testUserID, "hi", "John", "//a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.AddComment(context.Background(), testPostID, comment))
}

func TestAddComment_MissingPost(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectExec("INSERT INTO post_comments").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.AddComment(context.Background(), testPostID, models.Comment{ID: testEntryID})

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeleteComment_Missing(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectExec("DELETE FROM post_comments").
		WithArgs(testEntryID, testPostID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteComment(context.Background(), testPostID, testEntryID)

	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment_Success(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectExec("DELETE FROM post_comments").
		WithArgs(testEntryID, testPostID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteComment(context.Background(), testPostID, testEntryID))
}
