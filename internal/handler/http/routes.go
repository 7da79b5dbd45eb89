// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
		h.metrics.Middleware,
		withGzipRequest,
		middleware.Compress(5, "application/json", "text/plain"),
		middleware.Timeout(h.requestTimeout),
	)

	// a known path with an unsupported method is reported like an unknown path
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Post("/api/users", h.register)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/", h.login)
		r.With(h.auth).Get("/", h.currentUser)
	})

	router.Route("/api/profile", func(r chi.Router) {
		// public
		r.Get("/", h.listProfiles)
		r.Get("/user/{user_id}", h.getProfileByUserID)
		r.Get("/github/{username}", h.getGithubRepos)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/me", h.getMyProfile)
			r.Post("/", h.upsertProfile)
			r.Delete("/", h.deleteAccount)

			r.Put("/experience", h.addExperience)
			r.Delete("/experience/{exp_id}", h.deleteExperience)
			r.Put("/education", h.addEducation)
			r.Delete("/education/{edu_id}", h.deleteEducation)
		})
	})

	router.Route("/api/posts", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createPost)
		r.Get("/", h.listPosts)
		r.Get("/{id}", h.getPost)
		r.Delete("/{id}", h.deletePost)

		r.Put("/likes/{id}", h.toggleLike)
		r.Post("/comment/{id}", h.addComment)
		r.Delete("/comment/{id}/{comment_id}", h.deleteComment)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	return router
}
