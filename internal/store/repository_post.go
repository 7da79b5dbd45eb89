// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// Likes and comments are rows of their own tables, so toggling a like or
// adding a comment never rewrites the post.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts post and returns it with CreatedAt set and empty
// like and comment lists.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	err := p.DB.QueryRowContext(ctx, createPost, post.ID, post.UserID, post.Text, post.Name, post.Avatar).
		Scan(&post.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Str("user_id", post.UserID).Msg("failed to insert post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	post.Likes = []models.Like{}
	post.Comments = []models.Comment{}

	return post, nil
}

// ListPosts returns all posts, newest first.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts := make([]models.Post, 0, 32)
	err := p.queryEach(ctx, listPosts, nil, func(rows *sql.Rows) error {
		post, err := scanPost(rows)
		if err != nil {
			return err
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to list posts")
		return nil, err
	}

	if err = p.loadActivity(ctx, posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost returns one post with likes and comments. An unknown id yields
// [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, postID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := scanPost(p.DB.QueryRowContext(ctx, getPost, postID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "postRepository.GetPost").Str("post_id", postID).Msg("failed to scan post row")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	posts := []models.Post{post}
	if err = p.loadActivity(ctx, posts); err != nil {
		return models.Post{}, err
	}

	return posts[0], nil
}

// DeletePost removes the post with its likes and comments.
func (p *postRepository) DeletePost(ctx context.Context, postID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Str("post_id", postID).Msg("failed to delete post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// ToggleLike flips the like of like.UserID on the post. The post row is
// locked for the duration of the transaction so concurrent toggles by the
// same user are applied one after another.
func (p *postRepository) ToggleLike(ctx context.Context, postID string, like models.Like) (bool, error) {
	log := logger.FromContext(ctx)

	var liked bool
	err := p.DB.withTx(ctx, "postRepository.ToggleLike", func(tx *sql.Tx) error {
		var lockedID string
		err := tx.QueryRowContext(ctx, lockPost, postID).Scan(&lockedID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		result, err := tx.ExecContext(ctx, deleteLike, postID, like.UserID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		removed, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if removed > 0 {
			liked = false
			return nil
		}

		if _, err = tx.ExecContext(ctx, insertLike, like.ID, postID, like.UserID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		liked = true
		return nil
	})
	if err != nil {
		if !isNotFound(err) {
			log.Err(err).Str("func", "postRepository.ToggleLike").Str("post_id", postID).Msg("failed to toggle like")
		}
		return false, err
	}

	return liked, nil
}

// AddComment stores comment on the post. A missing post yields
// [ErrPostNotFound].
func (p *postRepository) AddComment(ctx context.Context, postID string, comment models.Comment) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, insertComment,
		comment.ID, postID, comment.UserID, comment.Text, comment.Name, comment.Avatar)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrPostNotFound
		}
		log.Err(err).Str("func", "postRepository.AddComment").Str("post_id", postID).Msg("failed to insert comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteComment removes one comment of the post. A comment that is not on
// that post yields [ErrCommentNotFound].
func (p *postRepository) DeleteComment(ctx context.Context, postID, commentID string) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteComment, commentID, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeleteComment").Str("comment_id", commentID).Msg("failed to delete comment")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// loadActivity fills Likes and Comments of every post with two grouped
// queries.
func (p *postRepository) loadActivity(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(posts))
	index := make(map[string]int, len(posts))
	for i := range posts {
		ids = append(ids, posts[i].ID)
		index[posts[i].ID] = i
		posts[i].Likes = []models.Like{}
		posts[i].Comments = []models.Comment{}
	}

	query, args, err := buildSelectLikesQuery(ids)
	if err != nil {
		return err
	}
	err = p.queryEach(ctx, query, args, func(rows *sql.Rows) error {
		var (
			like   models.Like
			postID string
		)
		if err := rows.Scan(&like.ID, &postID, &like.UserID); err != nil {
			return err
		}
		if i, ok := index[postID]; ok {
			posts[i].Likes = append(posts[i].Likes, like)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.loadActivity").Msg("failed to load likes")
		return err
	}

	query, args, err = buildSelectCommentsQuery(ids)
	if err != nil {
		return err
	}
	err = p.queryEach(ctx, query, args, func(rows *sql.Rows) error {
		var (
			comment models.Comment
			postID  string
		)
		if err := rows.Scan(&comment.ID, &postID, &comment.UserID, &comment.Text,
			&comment.Name, &comment.Avatar, &comment.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[postID]; ok {
			posts[i].Comments = append(posts[i].Comments, comment)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "postRepository.loadActivity").Msg("failed to load comments")
		return err
	}

	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.UserID, &post.Text, &post.Name, &post.Avatar, &post.CreatedAt)
	return post, err
}
