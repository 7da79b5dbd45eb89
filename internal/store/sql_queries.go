// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (id, name, email, password, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;`

	findUserByEmail = `SELECT id, name, email, password, avatar, created_at
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, avatar, created_at
		FROM users
		WHERE id = $1;`

	deleteProfileByUserID = `DELETE FROM profiles WHERE user_id = $1;`
	deletePostsByUserID   = `DELETE FROM posts WHERE user_id = $1;`
	deleteUser            = `DELETE FROM users WHERE id = $1;`
)

const (
	selectProfiles = `SELECT p.id, p.user_id, u.name, u.avatar, p.company, p.website, p.location,
			p.status, p.skills, p.bio, p.github_username, p.social, p.created_at
		FROM profiles p
		JOIN users u ON u.id = p.user_id`

	getProfileByUserID = selectProfiles + `
		WHERE p.user_id = $1;`

	listProfiles = selectProfiles + `
		ORDER BY p.created_at DESC, p.id DESC;`

	findProfileIDByUserID = `SELECT id FROM profiles WHERE user_id = $1;`

	insertExperience = `INSERT INTO profile_experience
			(id, profile_id, title, company, location, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	deleteExperience = `DELETE FROM profile_experience WHERE id = $1 AND profile_id = $2;`

	insertEducation = `INSERT INTO profile_education
			(id, profile_id, school, degree, field_of_study, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	deleteEducation = `DELETE FROM profile_education WHERE id = $1 AND profile_id = $2;`
)

const (
	createPost = `INSERT INTO posts (id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;`

	listPosts = `SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC;`

	getPost = `SELECT id, user_id, text, name, avatar, created_at
		FROM posts
		WHERE id = $1;`

	deletePost = `DELETE FROM posts WHERE id = $1;`

	lockPost = `SELECT id FROM posts WHERE id = $1 FOR UPDATE;`

	deleteLike = `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2;`

	insertLike = `INSERT INTO post_likes (id, post_id, user_id) VALUES ($1, $2, $3);`

	insertComment = `INSERT INTO post_comments (id, post_id, user_id, text, name, avatar)
		VALUES ($1, $2, $3, $4, $5, $6);`

	deleteComment = `DELETE FROM post_comments WHERE id = $1 AND post_id = $2;`
)

// buildUpsertProfileQuery builds an INSERT ... ON CONFLICT (user_id) that
// writes only the fields present in update. Social links are merged into the
// stored object so absent networks keep their links.
func buildUpsertProfileQuery(profileID string, update models.ProfileUpdate) (string, []any, error) {
	columns := []string{"id", "user_id"}
	values := []any{profileID, update.UserID}
	sets := make([]string, 0, 9)

	addText := func(column string, value *string) {
		if value == nil {
			return
		}
		columns = append(columns, column)
		values = append(values, strings.TrimSpace(*value))
		sets = append(sets, column+" = EXCLUDED."+column)
	}

	addText("company", update.Company)
	addText("website", update.Website)
	addText("location", update.Location)
	addText("status", update.Status)
	addText("bio", update.Bio)
	addText("github_username", update.GithubUsername)

	if update.Skills != nil {
		skills := *update.Skills
		if skills == nil {
			skills = models.Skills{}
		}
		encoded, err := json.Marshal(skills)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
		}
		columns = append(columns, "skills")
		values = append(values, sq.Expr("?::jsonb", string(encoded)))
		sets = append(sets, "skills = EXCLUDED.skills")
	}

	social, err := json.Marshal(update.SocialPatch())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	columns = append(columns, "social")
	values = append(values, sq.Expr("?::jsonb", string(social)))
	sets = append(sets, "social = profiles.social || EXCLUDED.social")

	query, args, err := psql.Insert("profiles").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(sets, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectExperienceQuery(profileIDs []string) (string, []any, error) {
	return buildChildrenQuery("profile_experience", "profile_id", profileIDs,
		"id", "profile_id", "title", "company", "location", "from_date", "to_date", "current", "description")
}

func buildSelectEducationQuery(profileIDs []string) (string, []any, error) {
	return buildChildrenQuery("profile_education", "profile_id", profileIDs,
		"id", "profile_id", "school", "degree", "field_of_study", "from_date", "to_date", "current", "description")
}

func buildSelectLikesQuery(postIDs []string) (string, []any, error) {
	return buildChildrenQuery("post_likes", "post_id", postIDs, "id", "post_id", "user_id")
}

func buildSelectCommentsQuery(postIDs []string) (string, []any, error) {
	return buildChildrenQuery("post_comments", "post_id", postIDs,
		"id", "post_id", "user_id", "text", "name", "avatar", "created_at")
}

// buildChildrenQuery selects the rows of table owned by any of parentIDs,
// newest first.
func buildChildrenQuery(table, parentColumn string, parentIDs []string, columns ...string) (string, []any, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{parentColumn: parentIDs}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
