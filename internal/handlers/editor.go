// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"sitesmith/internal/analytics"
	"sitesmith/internal/cache"
	"sitesmith/internal/catalog"
	"sitesmith/internal/models"
	"sitesmith/internal/store"
)

// Editor groups the authenticated JSON API consumed by the builder UI.
type Editor struct {
	store     *store.ProjectStore
	tracker   *analytics.Tracker
	catalog   *catalog.Catalog
	siteCache *cache.SiteCache
}

// NewEditor creates the editor handler group. siteCache may be nil when
// Valkey is not configured.
func NewEditor(s *store.ProjectStore, tracker *analytics.Tracker, cat *catalog.Catalog, siteCache *cache.SiteCache) *Editor {
	return &Editor{store: s, tracker: tracker, catalog: cat, siteCache: siteCache}
}

// ProjectsList returns the current user's projects, newest first.
func (e *Editor) ProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := e.store.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// ProjectCreate creates a project from the posted fields.
func (e *Editor) ProjectCreate(w http.ResponseWriter, r *http.Request) {
	var in store.CreateProjectInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	p, err := e.store.CreateProject(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ProjectGet returns one project with its sections in display order.
func (e *Editor) ProjectGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	p, err := e.store.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	p.Sections = p.OrderedSections()
	writeJSON(w, http.StatusOK, p)
}

// ProjectUpdate merges a partial update into the project.
func (e *Editor) ProjectUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var patch models.ProjectPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	// Remember the current slug so a rename invalidates the old entry.
	oldSlug := ""
	if before, err := e.store.GetProject(r.Context(), id); err == nil {
		oldSlug = before.WebsiteURL
	}

	p, err := e.store.UpdateProject(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	e.siteCache.Invalidate(r.Context(), p.WebsiteURL)
	if oldSlug != "" && oldSlug != p.WebsiteURL {
		e.siteCache.Invalidate(r.Context(), oldSlug)
	}
	writeJSON(w, http.StatusOK, p)
}

// ProjectDelete removes the project and its analytics history.
func (e *Editor) ProjectDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	slug := ""
	if before, err := e.store.GetProject(r.Context(), id); err == nil {
		slug = before.WebsiteURL
	}

	if err := e.store.DeleteProject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	if slug != "" {
		e.siteCache.Invalidate(r.Context(), slug)
	}
	w.WriteHeader(http.StatusNoContent)
}

// addSectionRequest is the body for adding a section from a template.
type addSectionRequest struct {
	TemplateID string                 `json:"template_id"`
	Data       map[string]any         `json:"data"`
	Insert     *models.InsertPosition `json:"insert"`
}

// SectionAdd inserts a section instance created from a catalog template.
func (e *Editor) SectionAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req addSectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	section, err := e.store.AddSectionFromTemplate(r.Context(), id, req.TemplateID, req.Data, req.Insert)
	if err != nil {
		writeError(w, err)
		return
	}
	e.invalidateProject(r, id)
	writeJSON(w, http.StatusCreated, section)
}

// SectionUpdate replaces one section's content payload.
func (e *Editor) SectionUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sectionID, ok := pathUUID(w, r, "sectionID")
	if !ok {
		return
	}
	var req struct {
		Data map[string]any `json:"data"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := e.store.UpdateSectionData(r.Context(), id, sectionID, req.Data); err != nil {
		writeError(w, err)
		return
	}
	e.invalidateProject(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// SectionDelete removes a section; remaining sections re-normalize.
func (e *Editor) SectionDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sectionID, ok := pathUUID(w, r, "sectionID")
	if !ok {
		return
	}
	if err := e.store.DeleteSection(r.Context(), id, sectionID); err != nil {
		writeError(w, err)
		return
	}
	e.invalidateProject(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// SectionsReorder overwrites the section order from a full id sequence.
func (e *Editor) SectionsReorder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		SectionIDs []uuid.UUID `json:"section_ids"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := e.store.ReorderSections(r.Context(), id, req.SectionIDs); err != nil {
		writeError(w, err)
		return
	}
	e.invalidateProject(r, id)
	w.WriteHeader(http.StatusNoContent)
}

// SectionDuplicate clones a section directly below the original.
func (e *Editor) SectionDuplicate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	sectionID, ok := pathUUID(w, r, "sectionID")
	if !ok {
		return
	}
	clone, err := e.store.DuplicateSection(r.Context(), id, sectionID)
	if err != nil {
		writeError(w, err)
		return
	}
	e.invalidateProject(r, id)
	writeJSON(w, http.StatusCreated, clone)
}

// ProjectAnalytics returns the aggregated summary for a trailing window
// (?days=N, default 7). Ownership is checked before any aggregation.
func (e *Editor) ProjectAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if _, err := e.store.GetProject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	writeJSON(w, http.StatusOK, e.tracker.Summarize(id, days))
}

// TemplatesList returns the catalog, optionally filtered by ?category=.
func (e *Editor) TemplatesList(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		writeJSON(w, http.StatusOK, e.catalog.GetByCategory(category))
		return
	}
	writeJSON(w, http.StatusOK, e.catalog.List())
}

// TemplateCategories returns each category with its template count.
func (e *Editor) TemplateCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, e.catalog.ListCategories())
}

// DataClear wipes everything the current user owns.
func (e *Editor) DataClear(w http.ResponseWriter, r *http.Request) {
	if err := e.store.ClearAllData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// invalidateProject drops the cached public site of a project, if any.
func (e *Editor) invalidateProject(r *http.Request, id uuid.UUID) {
	if p, err := e.store.GetProject(r.Context(), id); err == nil {
		e.siteCache.Invalidate(r.Context(), p.WebsiteURL)
	}
}
