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
	"sitesmith/internal/slug"
)

// CreateProjectInput carries the optional fields of a new project.
// Only Name is required; WebsiteURL is derived from it when empty.
type CreateProjectInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	WebsiteURL  string   `json:"website_url"`
	Category    string   `json:"category"`
	SEOKeywords []string `json:"seo_keywords"`
	Logo        string   `json:"logo"`
	Favicon     string   `json:"favicon"`
}

// CreateProject creates a project owned by the current user and persists
// it immediately. The owner is set once here and never changes.
func (s *ProjectStore) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, fmt.Errorf("project name required")
	}

	websiteURL := in.WebsiteURL
	if websiteURL == "" {
		websiteURL = slug.Generate(in.Name)
	}
	if !slug.Valid(websiteURL) {
		return nil, fmt.Errorf("invalid website url %q", in.WebsiteURL)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	if slugTaken(projects, websiteURL, uuid.Nil) {
		return nil, ErrSlugTaken
	}

	now := s.now()
	p := models.Project{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  websiteURL,
		Category:    in.Category,
		SEOKeywords: in.SEOKeywords,
		Logo:        in.Logo,
		Favicon:     in.Favicon,
		Sections:    []models.SectionInstance{},
		ThemeID:     models.DefaultThemeID,
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	projects[p.ID.String()] = p
	s.saveProjects(projects)
	s.notify(p)

	slog.Info("project created", "project_id", p.ID, "website_url", p.WebsiteURL)
	return &p, nil
}

// ListProjects returns the current user's projects, newest first.
func (s *ProjectStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Project
	for _, p := range s.loadProjects() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetProject returns one of the current user's projects by id.
func (s *ProjectStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := ownedProject(s.loadProjects(), id, userID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject merges a partial update into the stored project and
// bumps its updated timestamp. A publish transition (false → true)
// derives PublishURL from the configured site base and the project's
// website url; unpublishing clears the published flag but keeps the
// last publish url.
func (s *ProjectStore) UpdateProject(ctx context.Context, id uuid.UUID, patch models.ProjectPatch) (*models.Project, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, err := ownedProject(projects, id, userID)
	if err != nil {
		return nil, err
	}

	if patch.WebsiteURL != nil && *patch.WebsiteURL != p.WebsiteURL {
		if !slug.Valid(*patch.WebsiteURL) {
			return nil, fmt.Errorf("invalid website url %q", *patch.WebsiteURL)
		}
		if slugTaken(projects, *patch.WebsiteURL, p.ID) {
			return nil, ErrSlugTaken
		}
		p.WebsiteURL = *patch.WebsiteURL
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SEOKeywords != nil {
		p.SEOKeywords = *patch.SEOKeywords
	}
	if patch.Logo != nil {
		p.Logo = *patch.Logo
	}
	if patch.Favicon != nil {
		p.Favicon = *patch.Favicon
	}

	themeChanged := false
	if patch.ThemeID != nil && *patch.ThemeID != p.ThemeID {
		p.ThemeID = *patch.ThemeID
		themeChanged = true
	}

	if patch.IsPublished != nil && *patch.IsPublished != p.IsPublished {
		if *patch.IsPublished {
			p.IsPublished = true
			p.PublishURL = s.siteBaseURL + "/" + p.WebsiteURL
			slog.Info("project published", "project_id", p.ID, "publish_url", p.PublishURL)
		} else {
			p.IsPublished = false
			slog.Info("project unpublished", "project_id", p.ID)
		}
	}

	p.UpdatedAt = s.now()
	projects[id.String()] = p
	s.saveProjects(projects)
	s.notify(p)

	if themeChanged {
		slog.Info("project theme changed", "project_id", p.ID, "theme_id", p.ThemeID)
	}
	return &p, nil
}

// DeleteProject removes a project and all of its analytics history.
func (s *ProjectStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	projects := s.loadProjects()
	p, err := ownedProject(projects, id, userID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	delete(projects, id.String())
	s.saveProjects(projects)
	s.mu.Unlock()

	// Cascade: the project's event and session history goes with it.
	if s.history != nil {
		s.history.ClearForProject(id)
	}

	slog.Info("project deleted", "project_id", id, "website_url", p.WebsiteURL)
	return nil
}

// ClearAllData wipes every project (and its analytics history) owned by
// the current user. Records belonging to other users are untouched —
// storage is one shared namespace.
func (s *ProjectStore) ClearAllData(ctx context.Context) error {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	projects := s.loadProjects()
	var removed []uuid.UUID
	for key, p := range projects {
		if p.UserID == userID {
			removed = append(removed, p.ID)
			delete(projects, key)
		}
	}
	s.saveProjects(projects)
	s.mu.Unlock()

	if s.history != nil {
		for _, id := range removed {
			s.history.ClearForProject(id)
		}
	}

	slog.Info("user data cleared", "user_id", userID, "projects_removed", len(removed))
	return nil
}

// ResolveSite returns the published project served at the given website
// url slug. This is the one read path that works without any identity —
// public viewers are anonymous. Draft projects are invisible here.
func (s *ProjectStore) ResolveSite(websiteURL string) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.loadProjects() {
		if p.WebsiteURL == websiteURL && p.IsPublished {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// slugTaken reports whether websiteURL is claimed by a project other
// than exclude.
func slugTaken(projects map[string]models.Project, websiteURL string, exclude uuid.UUID) bool {
	for _, p := range projects {
		if p.WebsiteURL == websiteURL && p.ID != exclude {
			return true
		}
	}
	return false
}
