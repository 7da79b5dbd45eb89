// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// ── Skills ───────────────────────────────────────────────────────────────────

func TestSkills_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Skills
		wantErr bool
	}{
		{name: "comma separated string", input: `"Go, SQL ,  Docker"`, want: Skills{"Go", "SQL", "Docker"}},
		{name: "array", input: `[" Go", "SQL "]`, want: Skills{"Go", "SQL"}},
		{name: "empty entries dropped", input: `"Go,, ,SQL"`, want: Skills{"Go", "SQL"}},
		{name: "empty string", input: `""`, want: Skills{}},
		{name: "null", input: `null`, want: nil},
		{name: "array with number", input: `["Go", 1]`, wantErr: true},
		{name: "object", input: `{"a":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Skills
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

// ── ProfileUpdate ────────────────────────────────────────────────────────────

func TestProfileUpdate_SocialPatch_OnlyPresentKeys(t *testing.T) {
	update := ProfileUpdate{Linkedin: strPtr(" https://linkedin.com/in/a "), Facebook: strPtr("")}

	assert.Equal(t, Social{
		SocialLinkedin: "https://linkedin.com/in/a",
		SocialFacebook: "",
	}, update.SocialPatch())
}

func TestProfileUpdate_DecodeFlatSocialFields(t *testing.T) {
	var update ProfileUpdate
	err := json.Unmarshal([]byte(`{"status":"Dev","skills":"Go,SQL","twitter":"t"}`), &update)
	require.NoError(t, err)

	require.NotNil(t, update.Status)
	require.NotNil(t, update.Skills)
	assert.Equal(t, Skills{"Go", "SQL"}, *update.Skills)
	assert.Nil(t, update.Company)
	assert.Equal(t, Social{SocialTwitter: "t"}, update.SocialPatch())
}

// ── Date ─────────────────────────────────────────────────────────────────────

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "calendar date", input: `"2020-05-17"`, want: "2020-05-17"},
		{name: "rfc3339", input: `"2020-05-17T23:10:00Z"`, want: "2020-05-17"},
		{name: "empty string", input: `""`, want: ""},
		{name: "null", input: `null`, want: ""},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
		{name: "number", input: `12`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(time.Date(2021, 3, 4, 15, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `"2021-03-04"`, string(b))

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

// ── Post ─────────────────────────────────────────────────────────────────────

func TestPost_LikedByAndComment(t *testing.T) {
	p := Post{
		Likes:    []Like{{ID: "l1", UserID: "u1"}},
		Comments: []Comment{{ID: "c1", UserID: "u2", Text: "hi"}},
	}

	assert.True(t, p.LikedBy("u1"))
	assert.False(t, p.LikedBy("u2"))

	c, ok := p.Comment("c1")
	require.True(t, ok)
	assert.Equal(t, "hi", c.Text)

	_, ok = p.Comment("missing")
	assert.False(t, ok)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		{Msg: "Name is required", Param: "name", Location: LocationBody},
		{Msg: "Please include a valid email", Param: "email", Location: LocationBody},
	}
	assert.Equal(t, "validation failed: name: Name is required; email: Please include a valid email", err.Error())
}
