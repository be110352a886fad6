// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"testing"

	"sitesmith/internal/session"
)

// publish flips a project to published through the editor API.
func (env *testEnv) publish(t *testing.T, id string) {
	t.Helper()
	w := env.do(t, http.MethodPatch, "/api/projects/"+id, map[string]any{"is_published": true})
	if w.Code != http.StatusOK {
		t.Fatalf("publish: got %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestPublicSiteServing(t *testing.T) {
	env := newTestEnv(t)

	p := env.createProject(t, "My Portfolio")
	id := p["id"].(string)
	env.do(t, http.MethodPost, "/api/projects/"+id+"/sections", map[string]any{
		"template_id": "hero-modern",
	})
	env.publish(t, id)

	w := env.doAs(t, "", http.MethodGet, "/site/my-portfolio", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("site: got %d, want 200: %s", w.Code, w.Body.String())
	}

	raw := w.Body.String()

	var site PublicSite
	decode(t, w, &site)
	if site.Name != "My Portfolio" {
		t.Errorf("name: got %q, want %q", site.Name, "My Portfolio")
	}
	if len(site.Sections) != 1 {
		t.Errorf("sections: got %d, want 1", len(site.Sections))
	}

	// Owner identity and counters never appear in the public payload.
	for _, forbidden := range []string{"user_id", "analytics", "visits"} {
		if strings.Contains(raw, forbidden) {
			t.Errorf("public payload leaks %q: %s", forbidden, raw)
		}
	}

	// Viewer identity cookies are issued.
	cookies := w.Result().Cookies()
	names := map[string]bool{}
	for _, c := range cookies {
		names[c.Name] = true
	}
	if !names[session.VisitorCookie] || !names[session.SessionCookie] {
		t.Errorf("cookies issued: got %v, want visitor and session cookies", names)
	}
}

func TestPublicSiteTracksVisits(t *testing.T) {
	env := newTestEnv(t)

	p := env.createProject(t, "Counted")
	id := p["id"].(string)
	env.publish(t, id)

	// Two requests without cookies are two distinct visitors.
	env.doAs(t, "", http.MethodGet, "/site/counted", nil)
	env.doAs(t, "", http.MethodGet, "/site/counted", nil)

	w := env.do(t, http.MethodGet, "/api/projects/"+id, nil)
	var got map[string]any
	decode(t, w, &got)
	analytics := got["analytics"].(map[string]any)
	if int(analytics["visits"].(float64)) != 2 {
		t.Errorf("visits: got %v, want 2", analytics["visits"])
	}
	if int(analytics["unique_visitors"].(float64)) != 2 {
		t.Errorf("unique visitors: got %v, want 2", analytics["unique_visitors"])
	}
}

func TestPublicSiteUnpublishedHidden(t *testing.T) {
	env := newTestEnv(t)

	env.createProject(t, "Draft")

	w := env.doAs(t, "", http.MethodGet, "/site/draft", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unpublished site: got %d, want 404", w.Code)
	}
	w = env.doAs(t, "", http.MethodGet, "/site/never-existed", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown slug: got %d, want 404", w.Code)
	}
}

func TestPublicEvents(t *testing.T) {
	env := newTestEnv(t)

	p := env.createProject(t, "Liked")
	id := p["id"].(string)
	env.publish(t, id)

	w := env.doAs(t, "", http.MethodPost, "/site/liked/events", map[string]any{"type": "like"})
	if w.Code != http.StatusAccepted {
		t.Fatalf("like event: got %d, want 202: %s", w.Code, w.Body.String())
	}
	w = env.doAs(t, "", http.MethodPost, "/site/liked/events", map[string]any{
		"type":    "coin_donation",
		"payload": map[string]any{"amount": 5},
	})
	if w.Code != http.StatusAccepted {
		t.Fatalf("coin event: got %d, want 202", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/projects/"+id, nil)
	var got map[string]any
	decode(t, w, &got)
	counters := got["analytics"].(map[string]any)
	if int(counters["likes"].(float64)) != 1 {
		t.Errorf("likes: got %v, want 1", counters["likes"])
	}
	if int(counters["coins"].(float64)) != 5 {
		t.Errorf("coins: got %v, want 5", counters["coins"])
	}
}

func TestPublicEventRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	p := env.createProject(t, "Strict")
	env.publish(t, p["id"].(string))

	w := env.doAs(t, "", http.MethodPost, "/site/strict/events", map[string]any{"type": "explosion"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown event type: got %d, want 400", w.Code)
	}
}

func TestClientContextDerivation(t *testing.T) {
	tests := []struct {
		name    string
		ua      string
		browser string
		os      string
	}{
		{"firefox linux", "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0", "firefox", "linux"},
		{"chrome windows", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36", "chrome", "windows"},
		{"safari iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1", "safari", "ios"},
		{"edge macos", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Safari/537.36 Edg/126.0", "edge", "macos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest("GET", "/site/x", nil)
			r.Header.Set("User-Agent", tt.ua)
			r.Header.Set("Accept-Language", "en-US,en;q=0.9")

			ctx := clientContext(r)
			if ctx.Browser != tt.browser {
				t.Errorf("browser: got %q, want %q", ctx.Browser, tt.browser)
			}
			if ctx.OS != tt.os {
				t.Errorf("os: got %q, want %q", ctx.OS, tt.os)
			}
			if ctx.Language != "en-US" {
				t.Errorf("language: got %q, want %q", ctx.Language, "en-US")
			}
		})
	}
}

func TestClientContextMobileDetection(t *testing.T) {
	r, _ := http.NewRequest("GET", "/site/x", nil)
	r.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 14) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0 Mobile Safari/537.36")

	ctx := clientContext(r)
	if ctx.Device != "mobile" {
		t.Errorf("device: got %q, want %q", ctx.Device, "mobile")
	}
	if got := clientContext(requestWithDevice("tablet")); got.Device != "tablet" {
		t.Errorf("explicit device header: got %q, want %q", got.Device, "tablet")
	}
}

func requestWithDevice(device string) *http.Request {
	r, _ := http.NewRequest("GET", "/site/x", nil)
	r.Header.Set("X-Client-Device", device)
	return r
}
