// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

type profileService struct {
	profileRepository store.ProfileRepository
	userRepository    store.UserRepository
	ids               idGenerator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (p *profileService) GetMyProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := p.profileRepository.GetProfileByUserID(ctx, userID)
	return profile, ownProfileError(err)
}

func (p *profileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return p.profileRepository.ListProfiles(ctx)
}

func (p *profileService) GetProfileByUserID(ctx context.Context, userID string) (models.Profile, error) {
	if !utils.IsValidUUID(userID) {
		return models.Profile{}, store.ErrProfileNotFound
	}

	return p.profileRepository.GetProfileByUserID(ctx, userID)
}

// UpsertProfile generates the id used when the profile does not exist yet.
func (p *profileService) UpsertProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	profile, err := p.profileRepository.UpsertProfile(ctx, p.ids.Generate(), update)
	if err != nil {
		log.Err(err).Str("func", "profileService.UpsertProfile").Str("user_id", update.UserID).Msg("profile upsert failed")
		return models.Profile{}, fmt.Errorf("profile upsert failed: %w", err)
	}

	return profile, nil
}

func (p *profileService) DeleteAccount(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if err := p.userRepository.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "profileService.DeleteAccount").Str("user_id", userID).Msg("account deletion failed")
		}
		return fmt.Errorf("account deletion failed: %w", err)
	}

	log.Info().Str("func", "profileService.DeleteAccount").Str("user_id", userID).Msg("account deleted")
	return nil
}

func (p *profileService) AddExperience(ctx context.Context, userID string, experience models.Experience) (models.Profile, error) {
	experience.ID = p.ids.Generate()
	profile, err := p.profileRepository.AddExperience(ctx, userID, experience)
	return profile, ownProfileError(err)
}

func (p *profileService) DeleteExperience(ctx context.Context, userID, experienceID string) (models.Profile, error) {
	if !utils.IsValidUUID(experienceID) {
		return p.missingEntry(ctx, userID, store.ErrExperienceNotFound)
	}

	profile, err := p.profileRepository.DeleteExperience(ctx, userID, experienceID)
	return profile, ownProfileError(err)
}

func (p *profileService) AddEducation(ctx context.Context, userID string, education models.Education) (models.Profile, error) {
	education.ID = p.ids.Generate()
	profile, err := p.profileRepository.AddEducation(ctx, userID, education)
	return profile, ownProfileError(err)
}

func (p *profileService) DeleteEducation(ctx context.Context, userID, educationID string) (models.Profile, error) {
	if !utils.IsValidUUID(educationID) {
		return p.missingEntry(ctx, userID, store.ErrEducationNotFound)
	}

	profile, err := p.profileRepository.DeleteEducation(ctx, userID, educationID)
	return profile, ownProfileError(err)
}

// missingEntry reports notFound for an entry id that cannot exist, unless
// the user has no profile at all.
func (p *profileService) missingEntry(ctx context.Context, userID string, notFound error) (models.Profile, error) {
	if _, err := p.profileRepository.GetProfileByUserID(ctx, userID); err != nil {
		return models.Profile{}, ownProfileError(err)
	}
	return models.Profile{}, notFound
}

func ownProfileError(err error) error {
	if errors.Is(err, store.ErrProfileNotFound) {
		return fmt.Errorf("%w: %w", ErrNoProfileForUser, err)
	}
	return err
}
