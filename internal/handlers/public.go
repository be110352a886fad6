// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitesmith/internal/analytics"
	"sitesmith/internal/cache"
	"sitesmith/internal/models"
	"sitesmith/internal/session"
	"sitesmith/internal/store"
)

// Public serves published sites by slug and ingests viewer events. No
// authentication applies here; viewers get cookie-based identity only.
type Public struct {
	store     *store.ProjectStore
	tracker   *analytics.Tracker
	sessions  *session.Manager
	siteCache *cache.SiteCache
}

// NewPublic creates the public handler group. siteCache may be nil.
func NewPublic(s *store.ProjectStore, tracker *analytics.Tracker, sessions *session.Manager, siteCache *cache.SiteCache) *Public {
	return &Public{store: s, tracker: tracker, sessions: sessions, siteCache: siteCache}
}

// PublicSite is the viewer-facing shape of a published project. Owner
// identity and analytics counters never leave the server.
type PublicSite struct {
	ID          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description,omitempty"`
	WebsiteURL  string                   `json:"website_url"`
	SEOKeywords []string                 `json:"seo_keywords,omitempty"`
	Logo        string                   `json:"logo,omitempty"`
	Favicon     string                   `json:"favicon,omitempty"`
	ThemeID     string                   `json:"theme_id"`
	Sections    []models.SectionInstance `json:"sections"`
}

// Site serves a published site by slug. The resolved payload is cached;
// a visit event is tracked on hits and misses alike.
func (p *Public) Site(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	visitorID, sessionID, err := p.sessions.EnsureIdentity(w, r)
	if err != nil {
		slog.Error("failed to establish viewer identity", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	if payload, ok := p.siteCache.Get(r.Context(), slug); ok {
		var site PublicSite
		if err := json.Unmarshal(payload, &site); err == nil {
			p.trackVisit(site.ID, visitorID, sessionID, r)
			writeJSON(w, http.StatusOK, site)
			return
		}
		slog.Warn("corrupt cached site, resolving from store", "slug", slug)
	}

	project, err := p.store.ResolveSite(slug)
	if err != nil {
		writeError(w, err)
		return
	}

	site := PublicSite{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		WebsiteURL:  project.WebsiteURL,
		SEOKeywords: project.SEOKeywords,
		Logo:        project.Logo,
		Favicon:     project.Favicon,
		ThemeID:     project.ThemeID,
		Sections:    project.OrderedSections(),
	}
	if payload, err := json.Marshal(site); err == nil {
		p.siteCache.Set(r.Context(), slug, payload)
	}

	p.trackVisit(site.ID, visitorID, sessionID, r)
	writeJSON(w, http.StatusOK, site)
}

// eventRequest is the body for viewer-submitted events.
type eventRequest struct {
	Type    models.EventType `json:"type"`
	Payload map[string]any   `json:"payload"`
}

// Event ingests one viewer event (page view, like, coin donation,
// section interaction) against a published site.
func (p *Public) Event(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	visitorID, sessionID, err := p.sessions.EnsureIdentity(w, r)
	if err != nil {
		slog.Error("failed to establish viewer identity", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	var req eventRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	switch req.Type {
	case models.EventVisit, models.EventPageView, models.EventLike,
		models.EventCoinDonation, models.EventSectionInteraction:
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown event type"})
		return
	}

	project, err := p.store.ResolveSite(slug)
	if err != nil {
		writeError(w, err)
		return
	}

	p.tracker.TrackEvent(project.ID, analytics.Event{
		Type:      req.Type,
		Payload:   req.Payload,
		Client:    clientContext(r),
		VisitorID: visitorID,
		SessionID: sessionID,
	})
	w.WriteHeader(http.StatusAccepted)
}

// trackVisit records a visit event for a served site.
func (p *Public) trackVisit(projectID uuid.UUID, visitorID, sessionID string, r *http.Request) {
	p.tracker.TrackEvent(projectID, analytics.Event{
		Type:      models.EventVisit,
		Client:    clientContext(r),
		VisitorID: visitorID,
		SessionID: sessionID,
	})
}

// clientContext derives the visitor environment from request headers.
// Device, screen and timezone come from explicit client headers when the
// frontend supplies them; browser and OS fall back to User-Agent
// sniffing, which only has to be roughly right for the summary buckets.
func clientContext(r *http.Request) models.ClientContext {
	ua := r.UserAgent()

	device := r.Header.Get("X-Client-Device")
	if device == "" {
		if strings.Contains(ua, "Mobi") {
			device = "mobile"
		} else {
			device = "desktop"
		}
	}

	language := r.Header.Get("Accept-Language")
	if i := strings.IndexAny(language, ",;"); i >= 0 {
		language = language[:i]
	}

	return models.ClientContext{
		Device:           device,
		Browser:          browserFromUA(ua),
		OS:               osFromUA(ua),
		ScreenResolution: r.Header.Get("X-Client-Screen"),
		Language:         language,
		Timezone:         r.Header.Get("X-Client-Timezone"),
		Referrer:         r.Referer(),
	}
}

func browserFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Firefox"):
		return "firefox"
	case strings.Contains(ua, "Edg"):
		return "edge"
	case strings.Contains(ua, "Chrome"):
		return "chrome"
	case strings.Contains(ua, "Safari"):
		return "safari"
	default:
		return "other"
	}
}

func osFromUA(ua string) string {
	switch {
	case strings.Contains(ua, "Windows"):
		return "windows"
	case strings.Contains(ua, "Mac"):
		return "macos"
	case strings.Contains(ua, "Android"):
		return "android"
	case strings.Contains(ua, "iPhone"), strings.Contains(ua, "iPad"):
		return "ios"
	case strings.Contains(ua, "Linux"):
		return "linux"
	default:
		return "other"
	}
}
