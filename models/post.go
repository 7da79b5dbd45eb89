// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a short text published by a user. Name and Avatar are a snapshot
// of the author taken when the post was created.
type Post struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"date"`
}

// LikedBy reports whether userID has a like on the post.
func (p Post) LikedBy(userID string) bool {
	for _, like := range p.Likes {
		if like.UserID == userID {
			return true
		}
	}
	return false
}

// Comment returns the comment with the given id.
func (p Post) Comment(commentID string) (Comment, bool) {
	for _, c := range p.Comments {
		if c.ID == commentID {
			return c, true
		}
	}
	return Comment{}, false
}

// Like marks a post as liked by one user. A user holds at most one like
// per post.
type Like struct {
	ID     string `json:"_id"`
	UserID string `json:"user"`
}

// Comment is a reply attached to a post, with the same author snapshot as
// the post itself.
type Comment struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// PostRequest is the body of POST /api/posts and POST /api/posts/comment/:id.
type PostRequest struct {
	Text string `json:"text" validate:"required"`
}

// ValidationMessages returns the messages reported for failed rules.
func (PostRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"text": "Text is required",
	}
}
