// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies a tracked analytics event.
type EventType string

const (
	EventVisit              EventType = "visit"
	EventLike               EventType = "like"
	EventCoinDonation       EventType = "coin_donation"
	EventPageView           EventType = "page_view"
	EventSectionInteraction EventType = "section_interaction"
)

// ClientContext carries the visitor-side environment supplied by the
// presentation layer. The tracker has no platform dependency of its own,
// so it can run headlessly in tests.
type ClientContext struct {
	Device           string `json:"device,omitempty"`
	Browser          string `json:"browser,omitempty"`
	OS               string `json:"os,omitempty"`
	ScreenResolution string `json:"screen_resolution,omitempty"`
	Language         string `json:"language,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	Referrer         string `json:"referrer,omitempty"`
}

// AnalyticsEvent is one tracked occurrence in the bounded event log.
type AnalyticsEvent struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"project_id"`
	Type      EventType      `json:"type"`
	VisitorID string         `json:"visitor_id"`
	SessionID string         `json:"session_id"`
	Client    ClientContext  `json:"client"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// VisitorSession records one viewing session: a stable visitor id paired
// with a shorter-lived session id, with enough activity data to compute
// bounce rate and session duration.
type VisitorSession struct {
	SessionID  string    `json:"session_id"`
	VisitorID  string    `json:"visitor_id"`
	ProjectID  uuid.UUID `json:"project_id"`
	StartedAt  time.Time `json:"started_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
	PageViews  int       `json:"page_views"`
}

// SectionInteractions pairs a section id with how often it was
// interacted with inside a summary window.
type SectionInteractions struct {
	SectionID string `json:"section_id"`
	Count     int    `json:"count"`
}

// AnalyticsSummary is the read-side aggregation over a project's event
// log for a trailing window.
type AnalyticsSummary struct {
	ProjectID  uuid.UUID `json:"project_id"`
	WindowDays int       `json:"window_days"`

	Visits    int `json:"visits"`
	PageViews int `json:"page_views"`
	Likes     int `json:"likes"`
	Coins     int `json:"coins"`

	ByDevice  map[string]int `json:"by_device"`
	ByBrowser map[string]int `json:"by_browser"`
	ByOS      map[string]int `json:"by_os"`

	// Hourly has 24 buckets (hour of day); Daily has one bucket per day
	// of the window keyed "YYYY-MM-DD".
	Hourly map[int]int    `json:"hourly"`
	Daily  map[string]int `json:"daily"`

	// BounceRate is sessions with at most one page view divided by total
	// sessions observed in the window.
	BounceRate         float64 `json:"bounce_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration_seconds"`

	TopSections []SectionInteractions `json:"top_sections"`
}
