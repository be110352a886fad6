// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SectionInstance is a concrete, ordered, editable occurrence of a
// section template within one project. The core never interprets Data —
// it is seeded from the template's default content and stored opaquely.
//
// Within a project, Order values always form a dense zero-based sequence
// with no gaps or duplicates. Every section mutation in the project
// store re-establishes this before persisting.
type SectionInstance struct {
	ID uuid.UUID `json:"id"`
	// TemplateID references the catalog entry this section was created
	// from. The template is not required to still exist.
	TemplateID string         `json:"template_id"`
	Data       map[string]any `json:"data"`
	Order      int            `json:"order"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// InsertAbove and InsertBelow place a new section relative to an
// existing index in the ordered list.
type InsertPlacement string

const (
	InsertAbove InsertPlacement = "above"
	InsertBelow InsertPlacement = "below"
)

// InsertPosition describes where a new section lands in the ordered
// list. A nil *InsertPosition means append at the end.
type InsertPosition struct {
	Index    int             `json:"index"`
	Position InsertPlacement `json:"position"`
}
