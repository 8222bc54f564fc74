package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ig-assessment/assessment-api/internal/projects/domain"
	"github.com/ig-assessment/assessment-api/internal/projects/store"
)

// Scheduler periodically logs a project-count snapshot.
type Scheduler struct {
	store    *store.Store
	schedule string
}

func NewScheduler(s *store.Store, schedule string) *Scheduler {
	return &Scheduler{store: s, schedule: schedule}
}

// Start initializes the cron task. A bad schedule is logged and skipped
// rather than treated as fatal.
func (s *Scheduler) Start() {
	c := cron.New()

	_, err := c.AddFunc(s.schedule, s.logSnapshot)
	if err != nil {
		log.Printf("Failed to create stats cron job: %v", err)
		return
	}

	log.Printf("Stats cron scheduler started (schedule %q)", s.schedule)
	c.Start()
}

func (s *Scheduler) logSnapshot() {
	counts := s.store.CountByStatus()
	log.Printf(
		"[stats] total=%d draft=%d active=%d completed=%d",
		s.store.Count(),
		counts[domain.StatusDraft],
		counts[domain.StatusActive],
		counts[domain.StatusCompleted],
	)
}
