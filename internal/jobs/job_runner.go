package jobs

import (
	"rentit-backend/internal/config"
	"rentit-backend/internal/logger"
	"rentit-backend/internal/repository"
	"rentit-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	vehicleRepo repository.VehicleRepository
	userRepo    repository.UserRepository
	emailSvc    service.EmailService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	vehicleRepo repository.VehicleRepository,
	userRepo repository.UserRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		config:      cfg,
	}
}

// Config exposes the configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReleaseServicedVehicles()
	jr.SendInsuranceExpiryReminders()
}
