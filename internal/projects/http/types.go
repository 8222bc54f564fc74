package http

import (
	"github.com/ig-assessment/assessment-api/internal/projects/domain"
	"github.com/ig-assessment/assessment-api/internal/projects/store"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// ListResponse is the paginated list payload. Total counts the filtered
// collection before the page slice is taken.
type ListResponse struct {
	Items []domain.Project `json:"items"`
	Total int              `json:"total"`
}

// StatsResponse aggregates project counts for the stats endpoint.
type StatsResponse struct {
	Projects ProjectStats `json:"projects"`
}

type ProjectStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}
