// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog is the static registry of section templates. It is a
// pure lookup table: entries are defined at compile time, never mutated,
// and lookups never fail beyond a not-found result.
package catalog

import (
	"sort"

	"sitesmith/internal/models"
)

// Catalog indexes the built-in section templates by id and category.
type Catalog struct {
	byID       map[string]models.SectionTemplate
	byCategory map[string][]models.SectionTemplate
	categories []string
}

// New builds the catalog from the built-in template set.
func New() *Catalog {
	return newFrom(builtinTemplates)
}

func newFrom(templates []models.SectionTemplate) *Catalog {
	c := &Catalog{
		byID:       make(map[string]models.SectionTemplate, len(templates)),
		byCategory: make(map[string][]models.SectionTemplate),
	}
	for _, tpl := range templates {
		c.byID[tpl.ID] = tpl
		if _, seen := c.byCategory[tpl.Category]; !seen {
			c.categories = append(c.categories, tpl.Category)
		}
		c.byCategory[tpl.Category] = append(c.byCategory[tpl.Category], tpl)
	}
	sort.Strings(c.categories)
	return c
}

// GetByID returns the template with the given id. The second return
// value is false when no such template exists.
func (c *Catalog) GetByID(id string) (models.SectionTemplate, bool) {
	tpl, ok := c.byID[id]
	return tpl, ok
}

// GetByCategory returns all templates in a category. Unknown categories
// yield an empty slice.
func (c *Catalog) GetByCategory(category string) []models.SectionTemplate {
	templates := c.byCategory[category]
	out := make([]models.SectionTemplate, len(templates))
	copy(out, templates)
	return out
}

// List returns every template in the catalog, grouped by category in
// category order.
func (c *Catalog) List() []models.SectionTemplate {
	var out []models.SectionTemplate
	for _, cat := range c.categories {
		out = append(out, c.byCategory[cat]...)
	}
	return out
}

// ListCategories returns each category with its display name and the
// number of templates it holds, computed on demand.
func (c *Catalog) ListCategories() []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(c.categories))
	for _, cat := range c.categories {
		out = append(out, models.CategoryInfo{
			ID:          cat,
			DisplayName: categoryDisplayNames[cat],
			Count:       len(c.byCategory[cat]),
		})
	}
	return out
}
