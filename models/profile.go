// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Social network keys stored in the profile's social links map.
const (
	SocialYoutube   = "youtube"
	SocialTwitter   = "twitter"
	SocialFacebook  = "facebook"
	SocialLinkedin  = "linkedin"
	SocialInstagram = "instagram"
)

// Profile is the career and social card of a single user.
// Experience and Education are ordered most recent first.
type Profile struct {
	ID             string       `json:"_id"`
	User           ProfileOwner `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         Skills       `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Social         Social       `json:"social,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"date"`
}

// ProfileOwner is the user snapshot joined into a profile on read.
type ProfileOwner struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Social maps a network key (see the Social* constants) to a link.
type Social map[string]string

// Experience is a single job entry of a profile.
type Experience struct {
	ID          string `json:"_id"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location,omitempty"`
	From        Date   `json:"from" validate:"required"`
	To          *Date  `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// ValidationMessages returns the messages reported for failed rules.
func (Experience) ValidationMessages() map[string]string {
	return map[string]string{
		"title":   "Title is required",
		"company": "Company is required",
		"from":    "From date is required",
	}
}

// Education is a single school entry of a profile.
type Education struct {
	ID           string `json:"_id"`
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         Date   `json:"from" validate:"required"`
	To           *Date  `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// ValidationMessages returns the messages reported for failed rules.
func (Education) ValidationMessages() map[string]string {
	return map[string]string{
		"school":       "School is required",
		"degree":       "Degree is required",
		"fieldofstudy": "Field of study is required",
		"from":         "From date is required",
	}
}

// ProfileUpdate is the body of POST /api/profile. Every field is optional
// except status and skills; only non-nil fields are written, so a partial
// update leaves the remaining columns untouched.
type ProfileUpdate struct {
	// UserID is filled from the authenticated request, never from the body.
	UserID string `json:"-"`

	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status" validate:"required,notblank"`
	GithubUsername *string `json:"githubusername"`
	Skills         *Skills `json:"skills" validate:"required,min=1"`

	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

// ValidationMessages returns the messages reported for failed rules.
func (ProfileUpdate) ValidationMessages() map[string]string {
	return map[string]string{
		"status": "Status is required",
		"skills": "Skills is required",
	}
}

// SocialPatch returns the social links present in the update.
// Keys absent from the patch keep their stored values.
func (u ProfileUpdate) SocialPatch() Social {
	patch := make(Social)
	for key, value := range map[string]*string{
		SocialYoutube:   u.Youtube,
		SocialTwitter:   u.Twitter,
		SocialFacebook:  u.Facebook,
		SocialLinkedin:  u.Linkedin,
		SocialInstagram: u.Instagram,
	} {
		if value != nil {
			patch[key] = strings.TrimSpace(*value)
		}
	}
	return patch
}

// Skills is an ordered list of skill names. It decodes from either a JSON
// array of strings or a single comma separated string; every entry is
// trimmed and empty entries are dropped.
type Skills []string

func (s *Skills) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var parts []string
	switch value := raw.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		parts = strings.Split(value, ",")
	case []any:
		parts = make([]string, 0, len(value))
		for _, item := range value {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("skills must be strings, got %T", item)
			}
			parts = append(parts, str)
		}
	default:
		return fmt.Errorf("skills must be a string or an array of strings, got %T", raw)
	}

	skills := make(Skills, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	*s = skills
	return nil
}
