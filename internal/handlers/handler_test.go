// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Everything runs in memory, so no external services
// are required.
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"sitesmith/internal/analytics"
	"sitesmith/internal/catalog"
	"sitesmith/internal/kv"
	"sitesmith/internal/middleware"
	"sitesmith/internal/session"
	"sitesmith/internal/store"
)

// testEnv holds all dependencies for handler integration tests, routed
// the same way the real server routes them.
type testEnv struct {
	router  chi.Router
	store   *store.ProjectStore
	tracker *analytics.Tracker
	user    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	kvs := kv.New(kv.NewMemBackend())
	cat := catalog.New()
	projects := store.New(kvs, cat, middleware.UserIDFromCtx, "https://sites.example.com")
	tracker := analytics.NewTracker(kvs, projects)
	projects.SetEventHistory(tracker)

	editor := NewEditor(projects, tracker, cat, nil)
	public := NewPublic(projects, tracker, session.NewManager(false), nil)

	r := chi.NewRouter()
	r.Use(middleware.Identity)
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
	r.Route("/site/{slug}", func(r chi.Router) {
		r.Get("/", public.Site)
		r.Post("/events", public.Event)
	})

	return &testEnv{router: r, store: projects, tracker: tracker, user: "user-a"}
}

// do performs an authenticated request against the test router.
func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return env.doAs(t, env.user, method, path, body)
}

// doAs performs a request as a specific user. Empty user sends no
// identity header.
func (env *testEnv) doAs(t *testing.T, user, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set(middleware.UserHeader, user)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response body into dst.
func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// createProject makes a project through the API and returns its decoded
// representation.
func (env *testEnv) createProject(t *testing.T, name string) map[string]any {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/projects", map[string]any{"name": name})
	if w.Code != http.StatusCreated {
		t.Fatalf("create project: got status %d, want 201: %s", w.Code, w.Body.String())
	}
	var p map[string]any
	decode(t, w, &p)
	return p
}
