// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/dev-connector/internal/config"
	"github.com/MKhiriev/dev-connector/internal/crypto"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

// authService implements [AuthService] on top of a [store.UserRepository].
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            idGenerator
	metrics        *metrics.Metrics

	// tokenSignKey is the HMAC secret for signing and verifying tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of issued tokens.
	tokenIssuer string

	// tokenDuration is how long an issued token stays valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] using the token settings of cfg.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, m *metrics.Metrics, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		metrics:        m,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	email := utils.NormalizeEmail(req.Email)
	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:       a.ids.Generate(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: passwordHash,
		Avatar:   utils.GravatarURL(email),
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Str("func", "authService.RegisterUser").Msg("user creation ended with error")
		}
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}
	a.metrics.Registrations.Inc()

	return a.createToken(registeredUser)
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(req.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "authService.Login").Msg("login with unknown email")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.Password, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Debug().Str("func", "authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Login").Str("user_id", foundUser.ID).Msg("stored password hash is unusable")
		return models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}
	a.metrics.Logins.Inc()

	return a.createToken(foundUser)
}

func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if !utils.IsValidUUID(userID) {
		return models.User{}, store.ErrUserNotFound
	}

	return a.userRepository.FindUserByID(ctx, userID)
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		a.metrics.TokenVerifications.WithLabelValues(metrics.StatusInvalid).Inc()
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	a.metrics.TokenVerifications.WithLabelValues(metrics.StatusValid).Inc()

	return token, nil
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
