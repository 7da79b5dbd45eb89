// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository
	dispatcher     EventDispatcher
	ids            idGenerator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, dispatcher EventDispatcher, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		userRepository: userRepository,
		dispatcher:     dispatcher,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreatePost copies the author's current name and avatar onto the post.
func (p *postService) CreatePost(ctx context.Context, userID string, req models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	author, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "postService.CreatePost").Str("user_id", userID).Msg("author lookup failed")
		return models.Post{}, fmt.Errorf("author lookup failed: %w", err)
	}

	post, err := p.postRepository.CreatePost(ctx, models.Post{
		ID:     p.ids.Generate(),
		UserID: author.ID,
		Text:   strings.TrimSpace(req.Text),
		Name:   author.Name,
		Avatar: author.Avatar,
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	p.dispatch(ctx, models.NewEvent(models.EventPostCreated, post.ID, userID))

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepository.ListPosts(ctx)
}

func (p *postService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	if !utils.IsValidUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}

	return p.postRepository.GetPost(ctx, postID)
}

func (p *postService) DeletePost(ctx context.Context, userID, postID string) error {
	log := logger.FromContext(ctx)

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != userID {
		log.Warn().Str("func", "postService.DeletePost").Str("user_id", userID).Str("post_id", postID).
			Msg("attempt to delete another user's post")
		return ErrNotPostAuthor
	}

	return p.postRepository.DeletePost(ctx, postID)
}

func (p *postService) ToggleLike(ctx context.Context, userID, postID string) (models.Post, error) {
	if !utils.IsValidUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}

	liked, err := p.postRepository.ToggleLike(ctx, postID, models.Like{ID: p.ids.Generate(), UserID: userID})
	if err != nil {
		return models.Post{}, err
	}

	eventType := models.EventPostUnliked
	if liked {
		eventType = models.EventPostLiked
	}
	p.dispatch(ctx, models.NewEvent(eventType, postID, userID))

	return p.postRepository.GetPost(ctx, postID)
}

func (p *postService) AddComment(ctx context.Context, userID, postID string, req models.PostRequest) (models.Post, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(postID) {
		return models.Post{}, store.ErrPostNotFound
	}

	author, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "postService.AddComment").Str("user_id", userID).Msg("author lookup failed")
		return models.Post{}, fmt.Errorf("author lookup failed: %w", err)
	}

	comment := models.Comment{
		ID:     p.ids.Generate(),
		UserID: author.ID,
		Text:   strings.TrimSpace(req.Text),
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err = p.postRepository.AddComment(ctx, postID, comment); err != nil {
		return models.Post{}, err
	}

	event := models.NewEvent(models.EventCommentAdded, postID, userID)
	event.CommentID = comment.ID
	p.dispatch(ctx, event)

	return p.postRepository.GetPost(ctx, postID)
}

func (p *postService) DeleteComment(ctx context.Context, userID, postID, commentID string) (models.Post, error) {
	log := logger.FromContext(ctx)

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}

	comment, ok := post.Comment(commentID)
	if !ok {
		return models.Post{}, store.ErrCommentNotFound
	}

	if post.UserID != userID && comment.UserID != userID {
		log.Warn().Str("func", "postService.DeleteComment").Str("user_id", userID).Str("comment_id", commentID).
			Msg("attempt to delete another user's comment")
		return models.Post{}, ErrNotCommentAuthor
	}

	if err = p.postRepository.DeleteComment(ctx, postID, commentID); err != nil {
		return models.Post{}, err
	}

	return p.postRepository.GetPost(ctx, postID)
}

func (p *postService) dispatch(ctx context.Context, event models.Event) {
	if err := p.dispatcher.Dispatch(event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "postService.dispatch").
			Str("type", string(event.Type)).Msg("event not dispatched")
	}
}
