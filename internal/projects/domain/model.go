package domain

import "time"

// Project is the core record tracked by the service. It is
// storage-agnostic and shared across store and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Status constants
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// DefaultStatus is assigned when a create payload omits status.
const DefaultStatus = StatusDraft

// ValidStatuses lists every status a project may carry.
var ValidStatuses = []string{StatusDraft, StatusActive, StatusCompleted}

// IsValidStatus reports whether s is a member of the fixed status set.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CreateProjectInput carries sanitized data for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      string
}

// UpdateProjectInput carries the subset of fields supplied on update.
// Nil fields are left untouched by the store.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *string
}

// Empty reports whether the update supplies no fields at all.
func (u UpdateProjectInput) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Status == nil
}
