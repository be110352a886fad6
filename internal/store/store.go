// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store is the project store: ownership-gated CRUD over projects
// and their ordered sections, publish-state transitions, and public site
// resolution. Durability is delegated to the kv persistence layer and
// default section content to the template catalog.
//
// Every mutation re-reads the latest stored record under the store's
// lock before merging, so counter updates from the analytics tracker and
// general project updates never clobber each other inside a process.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"sitesmith/internal/catalog"
	"sitesmith/internal/kv"
	"sitesmith/internal/models"
)

// projectsKey is the kv record holding all projects, keyed by project id.
const projectsKey = "projects"

// IdentityResolver returns the current authenticated user id. The auth
// subsystem lives outside this service; the store treats the id as
// opaque and re-resolves it on every operation, never caching it.
type IdentityResolver func(ctx context.Context) (string, bool)

// EventHistory is the slice of the analytics subsystem the store needs:
// purging a deleted project's event and session history.
type EventHistory interface {
	ClearForProject(projectID uuid.UUID)
}

// ProjectStore owns the collection of projects for the signed-in user.
type ProjectStore struct {
	mu          sync.Mutex
	kv          *kv.Store
	catalog     *catalog.Catalog
	identity    IdentityResolver
	siteBaseURL string
	history     EventHistory
	now         func() time.Time
	onChange    []func(models.Project)
}

// New creates a project store. siteBaseURL is the public base under
// which published sites are served; publish URLs derive from it.
func New(store *kv.Store, cat *catalog.Catalog, identity IdentityResolver, siteBaseURL string) *ProjectStore {
	return &ProjectStore{
		kv:          store,
		catalog:     cat,
		identity:    identity,
		siteBaseURL: siteBaseURL,
		now:         time.Now,
	}
}

// SetEventHistory wires the analytics subsystem in after construction
// (the tracker needs the store too, so one side attaches late).
func (s *ProjectStore) SetEventHistory(h EventHistory) {
	s.history = h
}

// Subscribe registers a callback invoked after every successful mutation
// with a copy of the updated project. Callbacks run synchronously on the
// mutating goroutine and must not call back into the store.
func (s *ProjectStore) Subscribe(fn func(models.Project)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// GetSectionTemplate delegates to the template catalog.
func (s *ProjectStore) GetSectionTemplate(templateID string) (models.SectionTemplate, bool) {
	return s.catalog.GetByID(templateID)
}

// ApplyAnalytics merges a counter mutation into the stored project
// through the same persistence path as every other mutation. It is the
// analytics tracker's write-back hook and carries no ownership check —
// counters move on anonymous visitor activity. Returns false if the
// project does not exist.
func (s *ProjectStore) ApplyAnalytics(projectID uuid.UUID, apply func(*models.ProjectAnalytics)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects := s.loadProjects()
	p, ok := projects[projectID.String()]
	if !ok {
		return false
	}

	apply(&p.Analytics)
	p.UpdatedAt = s.now()
	projects[projectID.String()] = p
	s.saveProjects(projects)
	s.notify(p)
	return true
}

// currentUser resolves the caller's identity, or ErrUnauthenticated.
func (s *ProjectStore) currentUser(ctx context.Context) (string, error) {
	userID, ok := s.identity(ctx)
	if !ok || userID == "" {
		return "", ErrUnauthenticated
	}
	return userID, nil
}

// loadProjects reads the latest stored project map. Callers must hold
// the store lock. A missing or unreadable record yields an empty map —
// the read path degrades, it never fails.
func (s *ProjectStore) loadProjects() map[string]models.Project {
	projects, ok := kv.Load[map[string]models.Project](s.kv, projectsKey)
	if !ok || projects == nil {
		return make(map[string]models.Project)
	}
	return projects
}

// saveProjects writes the project map back. Write failures are logged by
// the kv layer and accepted: in-memory and stored state may then diverge
// until the next successful write.
func (s *ProjectStore) saveProjects(projects map[string]models.Project) {
	kv.Save(s.kv, projectsKey, projects)
}

// ownedProject fetches a project and verifies ownership. Missing →
// ErrNotFound; owned by someone else → ErrAccessDenied.
func ownedProject(projects map[string]models.Project, id uuid.UUID, userID string) (models.Project, error) {
	p, ok := projects[id.String()]
	if !ok {
		slog.Warn("project not found", "project_id", id)
		return models.Project{}, ErrNotFound
	}
	if p.UserID != userID {
		slog.Warn("project access denied", "project_id", id, "owner", p.UserID, "caller", userID)
		return models.Project{}, ErrAccessDenied
	}
	return p, nil
}

// notify runs change callbacks with a copy of the updated project.
// Callers must hold the store lock.
func (s *ProjectStore) notify(p models.Project) {
	for _, fn := range s.onChange {
		fn(p)
	}
}

// cloneData deep-copies an opaque section payload so instances never
// alias catalog defaults or each other.
func cloneData(data map[string]any) map[string]any {
	if data == nil {
		return map[string]any{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		slog.Error("section data clone failed", "error", err)
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		slog.Error("section data clone failed", "error", err)
		return map[string]any{}
	}
	return out
}
