// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
)

const (
	serverErrorMessage  = "Server error"
	invalidTokenMessage = "Token is not valid"
)

type errorResponse struct {
	target error
	status int
	msg    string
}

// errorResponses is matched top to bottom. service.ErrNoProfileForUser wraps
// store.ErrProfileNotFound, so it has to come first.
var errorResponses = []errorResponse{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrNoToken, http.StatusUnauthorized, "No token, authorization denied"},
	{ErrInvalidToken, http.StatusUnauthorized, invalidTokenMessage},

	{store.ErrUserAlreadyExists, http.StatusBadRequest, "user already exists"},
	{service.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, invalidTokenMessage},
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{service.ErrNoProfileForUser, http.StatusNotFound, "There is no profile for this user"},
	{store.ErrProfileNotFound, http.StatusNotFound, "Profile not found"},
	{store.ErrExperienceNotFound, http.StatusNotFound, "Experience not found"},
	{store.ErrEducationNotFound, http.StatusNotFound, "Education not found"},

	{adapter.ErrGithubProfileNotFound, http.StatusNotFound, "No Github profile found"},
	{adapter.ErrGithubUnavailable, http.StatusBadGateway, "Github is unavailable"},

	{store.ErrPostNotFound, http.StatusNotFound, "Post not found"},
	{service.ErrNotPostAuthor, http.StatusUnauthorized, "User not authorized"},
	{store.ErrCommentNotFound, http.StatusNotFound, "Comment does not exist"},
	{service.ErrNotCommentAuthor, http.StatusBadRequest, "Cannot delete others' comments"},
}

// responseFromError returns the status and client message for err.
// Unknown errors become 500 without any internal detail.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError writes err as the JSON error envelope. Validation failures
// are written as the full list of field messages.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrs}, http.StatusBadRequest)
		return
	}

	status, msg := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.NewErrorResponse(msg), status)
}
