package main

import (
	"log"

	"github.com/ig-assessment/assessment-api/config"
	"github.com/ig-assessment/assessment-api/internal/bootstrap"
	"github.com/ig-assessment/assessment-api/internal/projects/store"
	cronjob "github.com/ig-assessment/assessment-api/internal/stats/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	st := store.New()
	st.ResetToInitial()
	if cfg.App.SeedCount > 0 {
		st.SeedToTarget(cfg.App.SeedCount)
	}
	log.Printf("store seeded with %d projects", st.Count())

	if cfg.App.StatsLogSchedule != "" {
		cronjob.NewScheduler(st, cfg.App.StatsLogSchedule).Start()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Env:         cfg.App.Environment,
		Version:     cfg.App.Version,
		Store:       st,
	})

	log.Printf("API running at http://localhost:%s", cfg.Server.Port)
	log.Println("Endpoints:")
	log.Println("  GET  /health")
	log.Println("  GET  /api/stats")
	log.Println("  GET  /api/projects")
	log.Println("  GET  /api/projects/:id")
	log.Println("  POST /api/projects")
	log.Println("  PUT  /api/projects/:id")
	log.Println("  DELETE /api/projects/:id")

	log.Fatal(r.Run(":" + cfg.Server.Port))
}
