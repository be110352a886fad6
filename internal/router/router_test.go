// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitesmith/internal/analytics"
	"sitesmith/internal/catalog"
	"sitesmith/internal/handlers"
	"sitesmith/internal/kv"
	"sitesmith/internal/middleware"
	"sitesmith/internal/session"
	"sitesmith/internal/store"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	kvs := kv.New(kv.NewMemBackend())
	cat := catalog.New()
	projects := store.New(kvs, cat, middleware.UserIDFromCtx, "https://sites.example.com")
	tracker := analytics.NewTracker(kvs, projects)
	projects.SetEventHistory(tracker)

	editor := handlers.NewEditor(projects, tracker, cat, nil)
	public := handlers.NewPublic(projects, tracker, session.NewManager(false), nil)
	return New(editor, public)
}

func TestRoutesWired(t *testing.T) {
	r := testRouter(t)

	tests := []struct {
		method string
		path   string
		header string
		want   int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/api/projects", "user-a", http.StatusOK},
		{"GET", "/api/projects", "", http.StatusUnauthorized},
		{"GET", "/api/templates", "user-a", http.StatusOK},
		{"GET", "/api/templates/categories", "user-a", http.StatusOK},
		{"GET", "/site/no-such-site", "", http.StatusNotFound},
		{"GET", "/nowhere", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		if tt.header != "" {
			req.Header.Set(middleware.UserHeader, tt.header)
		}
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.path, w.Code, tt.want)
		}
	}
}

func TestPanicRecovery(t *testing.T) {
	r := testRouter(t)

	// A request body the decoder rejects must not crash the server; this
	// exercises the middleware chain end to end.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/projects", nil)
	req.Header.Set(middleware.UserHeader, "user-a")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body create: got %d, want 400", w.Code)
	}
}
