// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultThemeID is assigned to new projects. Theme content lives in an
// external registry; the core only stores and propagates the id.
const DefaultThemeID = "default"

// Project is a user's website-in-progress: the root aggregate owning an
// ordered list of sections, publish state, and denormalized analytics
// counters.
type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	// WebsiteURL is the slug under which the published site is served.
	WebsiteURL  string            `json:"website_url"`
	Category    string            `json:"category,omitempty"`
	SEOKeywords []string          `json:"seo_keywords,omitempty"`
	Logo        string            `json:"logo,omitempty"`
	Favicon     string            `json:"favicon,omitempty"`
	Sections    []SectionInstance `json:"sections"`
	ThemeID     string            `json:"theme_id"`
	IsPublished bool              `json:"is_published"`
	PublishURL  string            `json:"publish_url,omitempty"`
	Analytics   ProjectAnalytics  `json:"analytics"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ProjectAnalytics holds the per-project counters kept in sync by the
// analytics tracker. All counters are non-negative.
type ProjectAnalytics struct {
	Visits         int        `json:"visits"`
	UniqueVisitors int        `json:"unique_visitors"`
	Likes          int        `json:"likes"`
	Coins          int        `json:"coins"`
	LastVisited    *time.Time `json:"last_visited,omitempty"`
}

// OrderedSections returns the project's sections sorted by their order
// index. The returned slice is a copy; mutating it does not affect the
// project.
func (p *Project) OrderedSections() []SectionInstance {
	sections := make([]SectionInstance, len(p.Sections))
	copy(sections, p.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	return sections
}

// SectionByID returns a pointer into the project's section slice for the
// given id, or nil if absent.
func (p *Project) SectionByID(id uuid.UUID) *SectionInstance {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}

// ProjectPatch is a partial update applied to a stored project. Nil
// fields are left untouched.
type ProjectPatch struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	WebsiteURL  *string   `json:"website_url,omitempty"`
	Category    *string   `json:"category,omitempty"`
	SEOKeywords *[]string `json:"seo_keywords,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
	Favicon     *string   `json:"favicon,omitempty"`
	ThemeID     *string   `json:"theme_id,omitempty"`
	IsPublished *bool     `json:"is_published,omitempty"`
}
