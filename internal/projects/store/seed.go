package store

import (
	"fmt"
	"time"

	"github.com/ig-assessment/assessment-api/internal/projects/domain"
)

var initialProjects = []domain.Project{
	{
		ID:          "1",
		Name:        "Mobile App Redesign",
		Description: "Modernize the candidate portal mobile experience with React Native.",
		Status:      domain.StatusActive,
		CreatedAt:   time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 20, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		Name:        "API Gateway Migration",
		Description: "Migrate legacy REST endpoints to new gateway with improved auth.",
		Status:      domain.StatusDraft,
		CreatedAt:   time.Date(2025, 1, 18, 9, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 18, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		Name:        "E2E Test Suite",
		Description: "Implement Maestro/Detox flows for critical user journeys.",
		Status:      domain.StatusCompleted,
		CreatedAt:   time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 25, 16, 0, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		Name:        "Design System Consolidation",
		Description: "Unify component library and tokens across web and mobile apps.",
		Status:      domain.StatusActive,
		CreatedAt:   time.Date(2025, 1, 12, 11, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 22, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:          "5",
		Name:        "Offline-First Sync",
		Description: "Add offline support with background sync and conflict resolution.",
		Status:      domain.StatusDraft,
		CreatedAt:   time.Date(2025, 1, 20, 14, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 20, 14, 0, 0, 0, time.UTC),
	},
}

type seedTemplate struct {
	name        string
	description string
	status      string
}

var seedTemplates = []seedTemplate{
	{"Mobile App Redesign", "Modernize the candidate portal mobile experience with React Native.", domain.StatusActive},
	{"API Gateway Migration", "Migrate legacy REST endpoints to new gateway with improved auth.", domain.StatusDraft},
	{"E2E Test Suite", "Implement Maestro/Detox flows for critical user journeys.", domain.StatusCompleted},
	{"Design System Consolidation", "Unify component library and tokens across web and mobile apps.", domain.StatusActive},
	{"Offline-First Sync", "Add offline support with background sync and conflict resolution.", domain.StatusDraft},
}

// ResetToInitial replaces the collection with the fixture projects and
// returns the resulting count. Useful for tests and local resets.
func (s *Store) ResetToInitial() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects = make([]domain.Project, len(initialProjects))
	copy(s.projects, initialProjects)
	return len(s.projects)
}

// SeedToTarget appends templated projects until the collection holds
// target records. Timestamps are back-dated one hour per remaining slot
// so that sorting by date stays meaningful.
func (s *Store) SeedToTarget(target int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.projects) < target {
		t := seedTemplates[len(s.projects)%len(seedTemplates)]
		id := s.nextIDLocked()
		ts := time.Now().UTC().Add(-time.Duration(target-len(s.projects)) * time.Hour)
		s.projects = append(s.projects, domain.Project{
			ID:          id,
			Name:        fmt.Sprintf("%s #%s", t.name, id),
			Description: t.description,
			Status:      t.status,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		})
	}
}
