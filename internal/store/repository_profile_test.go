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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	profileColumns = []string{
		"id", "user_id", "name", "avatar", "company", "website", "location",
		"status", "skills", "bio", "github_username", "social", "created_at",
	}
	experienceColumns = []string{
		"id", "profile_id", "title", "company", "location", "from_date", "to_date", "current", "description",
	}
	educationColumns = []string{
		"id", "profile_id", "school", "degree", "field_of_study", "from_date", "to_date", "current", "description",
	}
)

func newTestProfileRepo(t *testing.T) (ProfileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewProfileRepository(db, logger.Nop()), mock
}

func profileRow(rows *sqlmock.Rows, profileID, userID string, created time.Time) *sqlmock.Rows {
	return rows.AddRow(profileID, userID, "John", "//avatar", "Acme", "", "Berlin",
		"Developer", []byte(`["go","sql"]`), "", "octocat", []byte(`{"twitter":"https://twitter.com/j"}`), created)
}

// expectLoadProfile registers the three queries issued to load one profile.
func expectLoadProfile(mock sqlmock.Sqlmock, created time.Time, from time.Time) {
	mock.ExpectQuery("FROM profiles p").
		WithArgs(testUserID).
		WillReturnRows(profileRow(sqlmock.NewRows(profileColumns), testProfileID, testUserID, created))
	mock.ExpectQuery("FROM profile_experience").
		WithArgs(testProfileID).
		WillReturnRows(sqlmock.NewRows(experienceColumns).
			AddRow(testEntryID, testProfileID, "Engineer", "Acme", "", from, nil, true, ""))
	mock.ExpectQuery("FROM profile_education").
		WithArgs(testProfileID).
		WillReturnRows(sqlmock.NewRows(educationColumns))
}

// ── GetProfileByUserID ───────────────────────────────────────────────────────

func TestGetProfileByUserID_Success(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	created := time.Now().UTC()
	from := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	expectLoadProfile(mock, created, from)

	profile, err := repo.GetProfileByUserID(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testProfileID, profile.ID)
	assert.Equal(t, models.ProfileOwner{ID: testUserID, Name: "John", Avatar: "//avatar"}, profile.User)
	assert.Equal(t, models.Skills{"go", "sql"}, profile.Skills)
	assert.Equal(t, models.Social{"twitter": "https://twitter.com/j"}, profile.Social)
	assert.Equal(t, "octocat", profile.GithubUsername)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Engineer", profile.Experience[0].Title)
	assert.Equal(t, models.NewDate(from), profile.Experience[0].From)
	assert.Nil(t, profile.Experience[0].To)
	assert.True(t, profile.Experience[0].Current)
	assert.NotNil(t, profile.Education)
	assert.Empty(t, profile.Education)
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM profiles p").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(profileColumns))

	_, err := repo.GetProfileByUserID(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfileByUserID_BadSkillsJSON(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM profiles p").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(testProfileID, testUserID, "John", "", "", "", "",
			"Developer", []byte(`{`), "", "", []byte(`{}`), time.Now()))

	_, err := repo.GetProfileByUserID(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrEncodingJSON)
}

// ── ListProfiles ─────────────────────────────────────────────────────────────

func TestListProfiles_GroupsEntries(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	now := time.Now().UTC()
	secondProfile := "0190a1b2-0000-7000-8000-0000000000a2"

	rows := sqlmock.NewRows(profileColumns)
	profileRow(rows, testProfileID, testUserID, now)
	profileRow(rows, secondProfile, testOtherID, now)
	mock.ExpectQuery("FROM profiles p").WillReturnRows(rows)

	mock.ExpectQuery("FROM profile_experience").
		WithArgs(testProfileID, secondProfile).
		WillReturnRows(sqlmock.NewRows(experienceColumns).
			AddRow("e1", secondProfile, "Lead", "Initech", "", now, now, false, ""))
	mock.ExpectQuery("FROM profile_education").
		WithArgs(testProfileID, secondProfile).
		WillReturnRows(sqlmock.NewRows(educationColumns).
			AddRow("d1", testProfileID, "MIT", "BSc", "CS", now, nil, false, "").
			AddRow("d2", testProfileID, "School", "A", "B", now, nil, false, ""))

	profiles, err := repo.ListProfiles(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Empty(t, profiles[0].Experience)
	assert.Len(t, profiles[0].Education, 2)
	require.Len(t, profiles[1].Experience, 1)
	require.NotNil(t, profiles[1].Experience[0].To)
	assert.Empty(t, profiles[1].Education)
}

func TestListProfiles_Empty(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM profiles p").WillReturnRows(sqlmock.NewRows(profileColumns))

	profiles, err := repo.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListProfiles_QueryError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery("FROM profiles p").WillReturnError(errors.New("db down"))

	_, err := repo.ListProfiles(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── UpsertProfile ────────────────────────────────────────────────────────────

func TestUpsertProfile_WritesPresentFieldsAndReloads(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	status := "Developer"
	twitter := "https://twitter.com/j"
	skills := models.Skills{"go", "sql"}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(testProfileID, testUserID, status, `["go","sql"]`, `{"twitter":"https://twitter.com/j"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectLoadProfile(mock, time.Now().UTC(), time.Now().UTC())

	profile, err := repo.UpsertProfile(context.Background(), testProfileID, models.ProfileUpdate{
		UserID: testUserID, Status: &status, Skills: &skills, Twitter: &twitter,
	})

	require.NoError(t, err)
	assert.Equal(t, testProfileID, profile.ID)
}

func TestUpsertProfile_ExecError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	status := "Developer"

	mock.ExpectExec("INSERT INTO profiles").WillReturnError(errors.New("boom"))

	_, err := repo.UpsertProfile(context.Background(), testProfileID, models.ProfileUpdate{UserID: testUserID, Status: &status})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── experience / education ───────────────────────────────────────────────────

func TestAddExperience_Success(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	from := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testProfileID))
	mock.ExpectExec("INSERT INTO profile_experience").
		WithArgs(testEntryID, testProfileID, "Engineer", "Acme", "", from, sqlmock.AnyArg(), true, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectLoadProfile(mock, time.Now().UTC(), from)

	profile, err := repo.AddExperience(context.Background(), testUserID, models.Experience{
		ID: testEntryID, Title: "Engineer", Company: "Acme", From: models.NewDate(from), Current: true,
	})

	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)
}

func TestAddExperience_NoProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.AddExperience(context.Background(), testUserID, models.Experience{ID: testEntryID})

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestDeleteExperience_NotOnProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testProfileID))
	mock.ExpectExec("DELETE FROM profile_experience").
		WithArgs(testEntryID, testProfileID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.DeleteExperience(context.Background(), testUserID, testEntryID)

	assert.ErrorIs(t, err, ErrExperienceNotFound)
}

func TestAddEducation_Success(t *testing.T) {
	repo, mock := newTestProfileRepo(t)
	from := time.Date(2010, 9, 1, 0, 0, 0, 0, time.UTC)
	to := models.NewDate(time.Date(2014, 6, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testProfileID))
	mock.ExpectExec("INSERT INTO profile_education").
		WithArgs(testEntryID, testProfileID, "MIT", "BSc", "CS", from, sqlmock.AnyArg(), false, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectLoadProfile(mock, time.Now().UTC(), from)

	_, err := repo.AddEducation(context.Background(), testUserID, models.Education{
		ID: testEntryID, School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: models.NewDate(from), To: &to,
	})

	require.NoError(t, err)
}

func TestDeleteEducation_Success(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(testProfileID))
	mock.ExpectExec("DELETE FROM profile_education").
		WithArgs(testEntryID, testProfileID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectLoadProfile(mock, time.Now().UTC(), time.Now().UTC())

	_, err := repo.DeleteEducation(context.Background(), testUserID, testEntryID)

	require.NoError(t, err)
}

func TestDeleteEducation_NoProfile(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM profiles").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.DeleteEducation(context.Background(), testUserID, testEntryID)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

// ── date helpers ─────────────────────────────────────────────────────────────

func TestNullDate(t *testing.T) {
	assert.False(t, nullDate(nil).Valid)
	assert.False(t, nullDate(&models.Date{}).Valid)

	d := models.NewDate(time.Date(2021, 5, 4, 13, 0, 0, 0, time.UTC))
	got := nullDate(&d)
	assert.True(t, got.Valid)
	assert.Equal(t, d.Time, got.Time)
}
