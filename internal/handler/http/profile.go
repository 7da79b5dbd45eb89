// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/dev-connector/internal/utils"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getMyProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.GetMyProfile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if profiles == nil {
		profiles = []models.Profile{}
	}
	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) getProfileByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfileByUserID(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) upsertProfile(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.ProfileUpdate
	if err = h.decodeAndValidate(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.UserID = id

	profile, err := h.services.ProfileService.UpsertProfile(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProfileService.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "User deleted"}, http.StatusOK)
}

func (h *Handler) addExperience(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var experience models.Experience
	if err = h.decodeAndValidate(w, r, &experience); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddExperience(r.Context(), id, experience)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.DeleteExperience(r.Context(), id, chi.URLParam(r, "exp_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) addEducation(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var education models.Education
	if err = h.decodeAndValidate(w, r, &education); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.AddEducation(r.Context(), id, education)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) deleteEducation(w http.ResponseWriter, r *http.Request) {
	id, err := userID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.DeleteEducation(r.Context(), id, chi.URLParam(r, "edu_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getGithubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.services.GithubService.GetUserRepos(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if repos == nil {
		repos = []models.GithubRepo{}
	}
	utils.WriteJSON(w, repos, http.StatusOK)
}
