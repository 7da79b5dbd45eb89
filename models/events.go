// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a domain event published to the message broker.
type EventType string

const (
	EventPostCreated  EventType = "post.created"
	EventPostLiked    EventType = "post.liked"
	EventPostUnliked  EventType = "post.unliked"
	EventCommentAdded EventType = "comment.added"
)

// Event is the JSON message published for every post activity.
type Event struct {
	Type       EventType `json:"type"`
	PostID     string    `json:"post_id"`
	UserID     string    `json:"user_id"`
	CommentID  string    `json:"comment_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent stamps an event with the current time.
func NewEvent(eventType EventType, postID, userID string) Event {
	return Event{
		Type:       eventType,
		PostID:     postID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}
