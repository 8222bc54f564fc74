// Package store owns the authoritative in-memory project collection.
// Handlers run concurrently, so every operation takes the store mutex;
// reads hand out copies so callers can never mutate shared state.
package store

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ig-assessment/assessment-api/internal/projects/domain"
)

// Store holds the mutable project collection.
type Store struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// New creates an empty store.
func New() *Store {
	return &Store{projects: make([]domain.Project, 0, 16)}
}

// List returns a snapshot of every project in insertion order.
func (s *Store) List() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// ListByStatus returns projects matching the given status. An empty or
// unrecognized status returns the full snapshot; the permissive
// fallback keeps callers simple.
func (s *Store) ListByStatus(status string) []domain.Project {
	if !domain.IsValidStatus(status) {
		return s.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the project with the given id.
func (s *Store) Get(id string) (domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// Has reports whether a project with the given id exists.
func (s *Store) Has(id string) bool {
	_, err := s.Get(id)
	return err == nil
}

// Create assigns a fresh id, stamps both timestamps, and appends the
// project to the collection.
func (s *Store) Create(in domain.CreateProjectInput) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = domain.DefaultStatus
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:          s.nextIDLocked(),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.projects = append(s.projects, p)
	return p
}

// Update merges the supplied fields onto the existing record and
// refreshes updatedAt. Absent fields are left untouched.
func (s *Store) Update(id string, in domain.UpdateProjectInput) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			p.Description = strings.TrimSpace(*in.Description)
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		p.UpdatedAt = time.Now().UTC()
		return *p, nil
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// Delete removes the project with the given id and reports whether a
// removal occurred.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the total number of projects.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// CountByStatus maps each of the fixed statuses to its current count.
func (s *Store) CountByStatus() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int, len(domain.ValidStatuses))
	for _, status := range domain.ValidStatuses {
		counts[status] = 0
	}
	for _, p := range s.projects {
		if _, ok := counts[p.Status]; ok {
			counts[p.Status]++
		}
	}
	return counts
}

// nextIDLocked returns one greater than the maximum numeric id in the
// collection, as a string. Non-numeric ids count as zero, so an empty
// or fully non-numeric collection yields "1". Caller must hold the lock.
func (s *Store) nextIDLocked() string {
	max := 0
	for _, p := range s.projects {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

func (s *Store) snapshotLocked() []domain.Project {
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

var sortFields = map[string]bool{
	"updatedAt": true,
	"createdAt": true,
	"name":      true,
	"status":    true,
}

// SortProjects returns a new list stable-sorted on the named field.
// Unknown fields fall back to updatedAt; any order other than "asc"
// sorts descending. Equal keys keep their relative input order.
func SortProjects(list []domain.Project, sortBy, order string) []domain.Project {
	out := make([]domain.Project, len(list))
	copy(out, list)

	field := sortBy
	if !sortFields[field] {
		field = "updatedAt"
	}
	asc := order == "asc"

	sort.SliceStable(out, func(i, j int) bool {
		c := compareByField(out[i], out[j], field)
		if asc {
			return c < 0
		}
		return c > 0
	})
	return out
}

func compareByField(a, b domain.Project, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "status":
		return strings.Compare(a.Status, b.Status)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	default:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	}
}
