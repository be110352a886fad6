// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analytics turns discrete viewer events into durable per-project
// counters and a bounded event log. Visits are deduplicated per session,
// unique visitors per visitor id. Counter write-back goes through the
// project store's persistence path so counter updates and project edits
// never race within a process.
package analytics

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitesmith/internal/kv"
	"sitesmith/internal/models"
)

const (
	// eventsKey is the kv record holding the bounded event log.
	eventsKey = "simple_analytics"
	// sessionsKey is the kv record holding per-(project, session) records.
	sessionsKey = "visitor_sessions"

	// maxEvents bounds the event log; oldest events are evicted beyond it.
	maxEvents = 2000

	// visitDedupWindow treats a repeat visit from the same session within
	// this window as a page-reload artifact, not a new visit.
	visitDedupWindow = 30 * time.Second
)

// ProjectCounters is the slice of the project store the tracker writes
// through: merging counter mutations into the latest stored project.
type ProjectCounters interface {
	ApplyAnalytics(projectID uuid.UUID, apply func(*models.ProjectAnalytics)) bool
}

// Event is one tracked occurrence as reported by the presentation layer,
// which supplies the visitor/session identity and client environment.
type Event struct {
	Type      models.EventType
	Payload   map[string]any
	Client    models.ClientContext
	VisitorID string
	SessionID string
}

// Tracker is the analytics counter subsystem.
type Tracker struct {
	mu       sync.Mutex
	kv       *kv.Store
	projects ProjectCounters
	now      func() time.Time
}

// NewTracker creates a tracker persisting through the given kv store and
// writing counters back through the project store.
func NewTracker(store *kv.Store, projects ProjectCounters) *Tracker {
	return &Tracker{kv: store, projects: projects, now: time.Now}
}

// TrackEvent records one event for a project. Duplicate visits inside
// the dedup window are dropped; the first visit from a visitor also
// bumps the unique-visitor counter. Events against unknown projects are
// logged no-ops.
func (t *Tracker) TrackEvent(projectID uuid.UUID, ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	events := t.loadEvents()

	if ev.Type == models.EventVisit && t.isDuplicateVisit(events, projectID, ev.SessionID, now) {
		t.touchSession(projectID, ev, now)
		return
	}

	// Counter-bearing events require the project to exist; the counter
	// merge doubles as the existence check.
	switch ev.Type {
	case models.EventVisit:
		unique := !t.hasPriorVisit(events, projectID, ev.VisitorID)
		if !t.projects.ApplyAnalytics(projectID, func(a *models.ProjectAnalytics) {
			a.Visits++
			if unique {
				a.UniqueVisitors++
			}
			visited := now
			a.LastVisited = &visited
		}) {
			slog.Warn("event for unknown project dropped", "project_id", projectID, "type", ev.Type)
			return
		}
	case models.EventLike:
		if !t.projects.ApplyAnalytics(projectID, func(a *models.ProjectAnalytics) {
			a.Likes++
		}) {
			slog.Warn("event for unknown project dropped", "project_id", projectID, "type", ev.Type)
			return
		}
	case models.EventCoinDonation:
		amount := coinAmount(ev.Payload)
		if !t.projects.ApplyAnalytics(projectID, func(a *models.ProjectAnalytics) {
			a.Coins += amount
		}) {
			slog.Warn("event for unknown project dropped", "project_id", projectID, "type", ev.Type)
			return
		}
	}

	events = append(events, models.AnalyticsEvent{
		ID:        uuid.New(),
		ProjectID: projectID,
		Type:      ev.Type,
		VisitorID: ev.VisitorID,
		SessionID: ev.SessionID,
		Client:    ev.Client,
		Payload:   ev.Payload,
		CreatedAt: now,
	})
	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}
	kv.Save(t.kv, eventsKey, events)

	t.touchSession(projectID, ev, now)
}

// ClearForProject purges all events and session records tied to a
// project. Called by the project store on delete and data-clear.
func (t *Tracker) ClearForProject(projectID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	events := t.loadEvents()
	kept := events[:0]
	for _, ev := range events {
		if ev.ProjectID != projectID {
			kept = append(kept, ev)
		}
	}
	kv.Save(t.kv, eventsKey, kept)

	sessions := t.loadSessions()
	for key, sess := range sessions {
		if sess.ProjectID == projectID {
			delete(sessions, key)
		}
	}
	kv.Save(t.kv, sessionsKey, sessions)

	slog.Info("analytics history cleared", "project_id", projectID)
}

// isDuplicateVisit reports whether a visit for the same project and
// session landed within the dedup window.
func (t *Tracker) isDuplicateVisit(events []models.AnalyticsEvent, projectID uuid.UUID, sessionID string, now time.Time) bool {
	for i := len(events) - 1; i >= 0; i-- {
		ev := events[i]
		if now.Sub(ev.CreatedAt) > visitDedupWindow {
			return false
		}
		if ev.Type == models.EventVisit && ev.ProjectID == projectID && ev.SessionID == sessionID {
			return true
		}
	}
	return false
}

// hasPriorVisit reports whether this visitor has a visit event for the
// project anywhere in the retained log.
func (t *Tracker) hasPriorVisit(events []models.AnalyticsEvent, projectID uuid.UUID, visitorID string) bool {
	for _, ev := range events {
		if ev.Type == models.EventVisit && ev.ProjectID == projectID && ev.VisitorID == visitorID {
			return true
		}
	}
	return false
}

// touchSession upserts the (project, session) record: first sight sets
// the start time, every event advances last-seen, page views count up.
func (t *Tracker) touchSession(projectID uuid.UUID, ev Event, now time.Time) {
	if ev.SessionID == "" {
		return
	}
	sessions := t.loadSessions()
	key := sessionKey(projectID, ev.SessionID)
	sess, ok := sessions[key]
	if !ok {
		sess = models.VisitorSession{
			SessionID: ev.SessionID,
			VisitorID: ev.VisitorID,
			ProjectID: projectID,
			StartedAt: now,
		}
	}
	sess.LastSeenAt = now
	if ev.Type == models.EventPageView {
		sess.PageViews++
	}
	sessions[key] = sess
	kv.Save(t.kv, sessionsKey, sessions)
}

func (t *Tracker) loadEvents() []models.AnalyticsEvent {
	events, ok := kv.Load[[]models.AnalyticsEvent](t.kv, eventsKey)
	if !ok {
		return nil
	}
	return events
}

func (t *Tracker) loadSessions() map[string]models.VisitorSession {
	sessions, ok := kv.Load[map[string]models.VisitorSession](t.kv, sessionsKey)
	if !ok || sessions == nil {
		return make(map[string]models.VisitorSession)
	}
	return sessions
}

func sessionKey(projectID uuid.UUID, sessionID string) string {
	return projectID.String() + ":" + sessionID
}

// coinAmount reads the donation amount from an event payload, defaulting
// to one coin.
func coinAmount(payload map[string]any) int {
	if payload == nil {
		return 1
	}
	switch v := payload["amount"].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return 1
}
