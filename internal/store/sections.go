// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// AddSectionFromTemplate creates a section instance from a catalog
// template and inserts it into the project's ordered list. A nil
// position appends; otherwise the new section lands above or below the
// given index and displaced sections shift down. Unknown template ids
// are logged no-ops.
func (s *ProjectStore) AddSectionFromTemplate(ctx context.Context, projectID uuid.UUID, templateID string, customData map[string]any, pos *models.InsertPosition) (*models.SectionInstance, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	tpl, ok := s.catalog.GetByID(templateID)
	if !ok {
		slog.Warn("unknown section template", "template_id", templateID)
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, projectID, userID)
	if err != nil {
		return nil, err
	}

	target := len(p.Sections)
	if pos != nil {
		switch pos.Position {
		case models.InsertAbove:
			target = pos.Index
		case models.InsertBelow:
			target = pos.Index + 1
		default:
			return nil, fmt.Errorf("invalid insert position %q", pos.Position)
		}
		if target < 0 {
			target = 0
		}
		if target > len(p.Sections) {
			target = len(p.Sections)
		}
		// Make room: everything at or past the target slides down one.
		for i := range p.Sections {
			if p.Sections[i].Order >= target {
				p.Sections[i].Order++
			}
		}
	}

	data := customData
	if data == nil {
		data = tpl.DefaultContent
	}

	now := s.now()
	section := models.SectionInstance{
		ID:         uuid.New(),
		TemplateID: templateID,
		Data:       cloneData(data),
		Order:      target,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	p.Sections = append(p.Sections, section)
	p.UpdatedAt = now
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)

	slog.Info("section added", "project_id", projectID, "template_id", templateID, "order", target)
	return &section, nil
}

// UpdateSectionData replaces a section's content payload and bumps its
// updated timestamp. The payload is opaque to the store.
func (s *ProjectStore) UpdateSectionData(ctx context.Context, projectID, sectionID uuid.UUID, data map[string]any) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, projectID, userID)
	if err != nil {
		return err
	}

	section := p.SectionByID(sectionID)
	if section == nil {
		slog.Warn("section not found", "project_id", projectID, "section_id", sectionID)
		return ErrNotFound
	}

	now := s.now()
	section.Data = cloneData(data)
	section.UpdatedAt = now
	p.UpdatedAt = now
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)
	return nil
}

// DeleteSection removes a section and re-normalizes the remaining
// sections to a dense 0..n-1 order preserving their relative sequence.
func (s *ProjectStore) DeleteSection(ctx context.Context, projectID, sectionID uuid.UUID) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, projectID, userID)
	if err != nil {
		return err
	}

	kept := p.Sections[:0]
	found := false
	for _, section := range p.Sections {
		if section.ID == sectionID {
			found = true
			continue
		}
		kept = append(kept, section)
	}
	if !found {
		slog.Warn("section not found", "project_id", projectID, "section_id", sectionID)
		return ErrNotFound
	}

	p.Sections = kept
	normalizeOrder(p.Sections)
	p.UpdatedAt = s.now()
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)

	slog.Info("section deleted", "project_id", projectID, "section_id", sectionID)
	return nil
}

// ReorderSections overwrites the project's section order from the full
// desired sequence (a drag-and-drop result). Every section must appear
// exactly once; anything else is rejected with no state change.
func (s *ProjectStore) ReorderSections(ctx context.Context, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, projectID, userID)
	if err != nil {
		return err
	}

	if len(orderedIDs) != len(p.Sections) {
		return fmt.Errorf("reorder requires all %d sections, got %d", len(p.Sections), len(orderedIDs))
	}
	position := make(map[uuid.UUID]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, dup := position[id]; dup {
			return fmt.Errorf("reorder lists section %s twice", id)
		}
		position[id] = i
	}
	for i := range p.Sections {
		order, ok := position[p.Sections[i].ID]
		if !ok {
			return fmt.Errorf("reorder missing section %s", p.Sections[i].ID)
		}
		p.Sections[i].Order = order
	}

	p.UpdatedAt = s.now()
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)
	return nil
}

// DuplicateSection clones a section directly below the original. The
// clone gets a fresh id and timestamps; sections after it shift down.
func (s *ProjectStore) DuplicateSection(ctx context.Context, projectID, sectionID uuid.UUID) (*models.SectionInstance, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, projectID, userID)
	if err != nil {
		return nil, err
	}

	original := p.SectionByID(sectionID)
	if original == nil {
		slog.Warn("section not found", "project_id", projectID, "section_id", sectionID)
		return nil, ErrNotFound
	}

	now := s.now()
	clone := models.SectionInstance{
		ID:         uuid.New(),
		TemplateID: original.TemplateID,
		Data:       cloneData(original.Data),
		Order:      original.Order + 1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range p.Sections {
		if p.Sections[i].Order > original.Order {
			p.Sections[i].Order++
		}
	}

	p.Sections = append(p.Sections, clone)
	p.UpdatedAt = now
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)

	slog.Info("section duplicated", "project_id", projectID, "section_id", sectionID, "clone_id", clone.ID)
	return &clone, nil
}

// normalizeOrder reassigns a dense 0..n-1 order preserving the sections'
// current relative sequence.
func normalizeOrder(sections []models.SectionInstance) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
	for i := range sections {
		sections[i].Order = i
	}
}
