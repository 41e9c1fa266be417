package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"rentit-backend/internal/config"
	"rentit-backend/internal/jobs"
	"rentit-backend/internal/logger"
	"rentit-backend/internal/repository"
	"rentit-backend/internal/repository/memory"
	"rentit-backend/internal/repository/postgres"
	"rentit-backend/internal/service"
)

// Runs the nightly maintenance jobs once and exits. Useful for manual
// execution and for external cron setups that do not want the in-process
// scheduler.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "all", "Job to run: all, release-serviced, insurance-reminders")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	var store repository.Store
	if cfg.Demo.Enabled {
		memStore := memory.NewStore()
		if err := memory.Seed(context.Background(), memStore, cfg.Demo.Password); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		store = memStore
	} else {
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		store = postgres.NewStore(db)
	}

	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		emailSvc = service.NewNoopEmailService()
	}

	runner := jobs.NewJobRunner(store.Vehicles(), store.Users(), emailSvc, cfg)

	switch *jobName {
	case "all":
		runner.RunAllNightlyJobs()
	case "release-serviced":
		runner.ReleaseServicedVehicles()
	case "insurance-reminders":
		runner.SendInsuranceExpiryReminders()
	default:
		log.Fatalf("Unknown job %q", *jobName)
	}
}
