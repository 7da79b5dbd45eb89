// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/metrics"
	"github.com/MKhiriev/dev-connector/internal/utils"
)

const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is read from the "x-auth-token" header; when that is absent a
// standard "Authorization: Bearer <token>" header is accepted. On success
// the authenticated user's id is stored in the request context under
// [utils.UserIDCtxKey].
//
// Requests are rejected with 401 and "No token, authorization denied" when
// no token is present, and with "Token is not valid" otherwise.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			status := metrics.StatusInvalid
			if errors.Is(err, ErrNoToken) {
				status = metrics.StatusMissing
			}
			h.metrics.TokenVerifications.WithLabelValues(status).Inc()
			log.Debug().Err(err).Str("func", "Handler.auth").Msg("request without a usable token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidToken, err))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}

// tokenFromRequest prefers the "x-auth-token" header. An "Authorization"
// header that is not a bearer token counts as an invalid token, not a
// missing one.
func tokenFromRequest(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.Header.Get(authTokenHeader)); token != "" {
		return token, nil
	}

	authHeader := r.Header.Get("Authorization")
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrNoToken
	}

	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return token, nil
}
