// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// SectionTemplate is an immutable catalog entry describing a reusable
// content block kind and its default payload. Catalog entries are never
// mutated at runtime.
type SectionTemplate struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	// DefaultContent is the initial Data payload for new instances.
	DefaultContent map[string]any `json:"default_content"`
}

// CategoryInfo summarizes one catalog category for template pickers.
type CategoryInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Count       int    `json:"count"`
}
