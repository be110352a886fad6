// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// SiteSmith builder. It organizes routes into the authenticated editor
// API and the public site surface.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"sitesmith/internal/handlers"
	"sitesmith/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(editor *handlers.Editor, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Identity)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Editor API — every route resolves the caller through the identity
	// middleware; unauthenticated requests get 401 from the store layer.
	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", editor.ProjectsList)
			r.Post("/", editor.ProjectCreate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", editor.ProjectGet)
				r.Patch("/", editor.ProjectUpdate)
				r.Delete("/", editor.ProjectDelete)
				r.Get("/analytics", editor.ProjectAnalytics)

				r.Route("/sections", func(r chi.Router) {
					r.Post("/", editor.SectionAdd)
					r.Post("/reorder", editor.SectionsReorder)
					r.Patch("/{sectionID}", editor.SectionUpdate)
					r.Delete("/{sectionID}", editor.SectionDelete)
					r.Post("/{sectionID}/duplicate", editor.SectionDuplicate)
				})
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", editor.TemplatesList)
			r.Get("/categories", editor.TemplateCategories)
		})

		r.Delete("/data", editor.DataClear)
	})

	// Public site surface — anonymous viewers with cookie identity.
	r.Route("/site/{slug}", func(r chi.Router) {
		r.Get("/", public.Site)
		r.Post("/events", public.Event)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
