// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository]. A profile is one "profiles" row joined with the
// owner's name and avatar; experience and education live in child tables.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] backed by db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProfileByUserID loads the profile of userID with all entries.
// A user without a profile yields [ErrProfileNotFound].
func (p *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanProfile(p.DB.QueryRowContext(ctx, getProfileByUserID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetProfileByUserID").
			Str("user_id", userID).
			Msg("failed to scan profile row")
		return models.Profile{}, err
	}

	profiles := []models.Profile{profile}
	if err = p.loadEntries(ctx, profiles); err != nil {
		return models.Profile{}, err
	}

	return profiles[0], nil
}

// ListProfiles returns every profile with its entries, newest first.
func (p *profileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listProfiles)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.ListProfiles").Msg("failed to execute query for listing profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.Profile, 0, 16)
	for rows.Next() {
		profile, scanErr := scanProfile(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "profileRepository.ListProfiles").Msg("failed to scan profile row")
			return nil, scanErr
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "profileRepository.ListProfiles").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = p.loadEntries(ctx, profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// UpsertProfile creates or partially updates the profile of update.UserID
// and returns the stored result.
func (p *profileRepository) UpsertProfile(ctx context.Context, profileID string, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertProfileQuery(profileID, update)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.UpsertProfile").Msg("failed to create query")
		return models.Profile{}, err
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpsertProfile").
			Str("user_id", update.UserID).
			Msg("failed to upsert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p.GetProfileByUserID(ctx, update.UserID)
}

// AddExperience stores experience on the profile of userID.
func (p *profileRepository) AddExperience(ctx context.Context, userID string, experience models.Experience) (models.Profile, error) {
	err := p.withProfileTx(ctx, "profileRepository.AddExperience", userID, func(tx *sql.Tx, profileID string) error {
		_, err := tx.ExecContext(ctx, insertExperience,
			experience.ID, profileID, experience.Title, experience.Company, experience.Location,
			experience.From.Time, nullDate(experience.To), experience.Current, experience.Description)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	return p.GetProfileByUserID(ctx, userID)
}

// DeleteExperience removes one experience entry from the profile of userID.
// An entry that is not on that profile yields [ErrExperienceNotFound].
func (p *profileRepository) DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error) {
	err := p.withProfileTx(ctx, "profileRepository.DeleteExperience", userID, func(tx *sql.Tx, profileID string) error {
		return deleteEntry(ctx, tx, deleteExperience, experienceID, profileID, ErrExperienceNotFound)
	})
	if err != nil {
		return models.Profile{}, err
	}

	return p.GetProfileByUserID(ctx, userID)
}

// AddEducation stores education on the profile of userID.
func (p *profileRepository) AddEducation(ctx context.Context, userID string, education models.Education) (models.Profile, error) {
	err := p.withProfileTx(ctx, "profileRepository.AddEducation", userID, func(tx *sql.Tx, profileID string) error {
		_, err := tx.ExecContext(ctx, insertEducation,
			education.ID, profileID, education.School, education.Degree, education.FieldOfStudy,
			education.From.Time, nullDate(education.To), education.Current, education.Description)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return models.Profile{}, err
	}

	return p.GetProfileByUserID(ctx, userID)
}

// DeleteEducation removes one education entry from the profile of userID.
// An entry that is not on that profile yields [ErrEducationNotFound].
func (p *profileRepository) DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error) {
	err := p.withProfileTx(ctx, "profileRepository.DeleteEducation", userID, func(tx *sql.Tx, profileID string) error {
		return deleteEntry(ctx, tx, deleteEducation, educationID, profileID, ErrEducationNotFound)
	})
	if err != nil {
		return models.Profile{}, err
	}

	return p.GetProfileByUserID(ctx, userID)
}

// withProfileTx resolves the profile id of userID inside a transaction and
// hands it to fn. A missing profile yields [ErrProfileNotFound].
func (p *profileRepository) withProfileTx(ctx context.Context, funcName, userID string, fn func(tx *sql.Tx, profileID string) error) error {
	log := logger.FromContext(ctx)

	err := p.DB.withTx(ctx, funcName, func(tx *sql.Tx) error {
		var profileID string
		err := tx.QueryRowContext(ctx, findProfileIDByUserID, userID).Scan(&profileID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProfileNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return fn(tx, profileID)
	})
	if err != nil && !isNotFound(err) {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("profile entry transaction failed")
	}

	return err
}

func deleteEntry(ctx context.Context, tx *sql.Tx, query, entryID, profileID string, notFound error) error {
	result, err := tx.ExecContext(ctx, query, entryID, profileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// loadEntries fills Experience and Education of every profile with two
// grouped queries.
func (p *profileRepository) loadEntries(ctx context.Context, profiles []models.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(profiles))
	index := make(map[string]int, len(profiles))
	for i := range profiles {
		ids = append(ids, profiles[i].ID)
		index[profiles[i].ID] = i
		profiles[i].Experience = []models.Experience{}
		profiles[i].Education = []models.Education{}
	}

	query, args, err := buildSelectExperienceQuery(ids)
	if err != nil {
		return err
	}
	err = p.queryEach(ctx, query, args, func(rows *sql.Rows) error {
		var (
			exp       models.Experience
			profileID string
			from      sql.NullTime
			to        sql.NullTime
		)
		if err := rows.Scan(&exp.ID, &profileID, &exp.Title, &exp.Company, &exp.Location,
			&from, &to, &exp.Current, &exp.Description); err != nil {
			return err
		}
		exp.From, exp.To = models.NewDate(from.Time), datePtr(to)

		if i, ok := index[profileID]; ok {
			profiles[i].Experience = append(profiles[i].Experience, exp)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "profileRepository.loadEntries").Msg("failed to load experience")
		return err
	}

	query, args, err = buildSelectEducationQuery(ids)
	if err != nil {
		return err
	}
	err = p.queryEach(ctx, query, args, func(rows *sql.Rows) error {
		var (
			edu       models.Education
			profileID string
			from      sql.NullTime
			to        sql.NullTime
		)
		if err := rows.Scan(&edu.ID, &profileID, &edu.School, &edu.Degree, &edu.FieldOfStudy,
			&from, &to, &edu.Current, &edu.Description); err != nil {
			return err
		}
		edu.From, edu.To = models.NewDate(from.Time), datePtr(to)

		if i, ok := index[profileID]; ok {
			profiles[i].Education = append(profiles[i].Education, edu)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "profileRepository.loadEntries").Msg("failed to load education")
		return err
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		profile models.Profile
		skills  []byte
		social  []byte
	)

	err := row.Scan(&profile.ID, &profile.User.ID, &profile.User.Name, &profile.User.Avatar,
		&profile.Company, &profile.Website, &profile.Location, &profile.Status, &skills,
		&profile.Bio, &profile.GithubUsername, &social, &profile.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, err
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(skills, &profile.Skills); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	if err = json.Unmarshal(social, &profile.Social); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return profile, nil
}

func nullDate(d *models.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func datePtr(t sql.NullTime) *models.Date {
	if !t.Valid {
		return nil
	}
	d := models.NewDate(t.Time)
	return &d
}
