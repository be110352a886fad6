// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package analytics

import (
	"sort"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// topSectionLimit caps the top-interacted-sections list in summaries.
const topSectionLimit = 5

// Summarize aggregates a project's event log over the trailing window.
// It is a pure read: no event or session record is mutated.
func (t *Tracker) Summarize(projectID uuid.UUID, windowDays int) models.AnalyticsSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	if windowDays <= 0 {
		windowDays = 7
	}
	now := t.now()
	cutoff := now.AddDate(0, 0, -windowDays)

	summary := models.AnalyticsSummary{
		ProjectID:  projectID,
		WindowDays: windowDays,
		ByDevice:   make(map[string]int),
		ByBrowser:  make(map[string]int),
		ByOS:       make(map[string]int),
		Hourly:     make(map[int]int),
		Daily:      make(map[string]int),
	}

	sectionCounts := make(map[string]int)
	windowSessions := make(map[string]bool)

	for _, ev := range t.loadEvents() {
		if ev.ProjectID != projectID || ev.CreatedAt.Before(cutoff) {
			continue
		}

		switch ev.Type {
		case models.EventVisit:
			summary.Visits++
			bump(summary.ByDevice, ev.Client.Device)
			bump(summary.ByBrowser, ev.Client.Browser)
			bump(summary.ByOS, ev.Client.OS)
		case models.EventPageView:
			summary.PageViews++
		case models.EventLike:
			summary.Likes++
		case models.EventCoinDonation:
			summary.Coins += coinAmount(ev.Payload)
		case models.EventSectionInteraction:
			if id, ok := ev.Payload["section_id"].(string); ok && id != "" {
				sectionCounts[id]++
			}
		}

		summary.Hourly[ev.CreatedAt.Hour()]++
		summary.Daily[ev.CreatedAt.Format("2006-01-02")]++
		if ev.SessionID != "" {
			windowSessions[ev.SessionID] = true
		}
	}

	// Bounce rate and session duration come from the session records of
	// sessions observed in the window.
	var bounced int
	var totalDuration float64
	var measured int
	for _, sess := range t.loadSessions() {
		if sess.ProjectID != projectID || !windowSessions[sess.SessionID] {
			continue
		}
		measured++
		if sess.PageViews <= 1 {
			bounced++
		}
		totalDuration += sess.LastSeenAt.Sub(sess.StartedAt).Seconds()
	}
	if measured > 0 {
		summary.BounceRate = float64(bounced) / float64(measured)
		summary.AvgSessionDuration = totalDuration / float64(measured)
	}

	summary.TopSections = topSections(sectionCounts)
	return summary
}

func bump(m map[string]int, key string) {
	if key == "" {
		key = "unknown"
	}
	m[key]++
}

// topSections ranks section interaction counts, highest first, ties
// broken by section id for stable output.
func topSections(counts map[string]int) []models.SectionInteractions {
	out := make([]models.SectionInteractions, 0, len(counts))
	for id, count := range counts {
		out = append(out, models.SectionInteractions{SectionID: id, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].SectionID < out[j].SectionID
	})
	if len(out) > topSectionLimit {
		out = out[:topSectionLimit]
	}
	return out
}
