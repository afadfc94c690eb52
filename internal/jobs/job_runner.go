package jobs

import (
	"time"

	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	reservations repository.ReservationRepository
	transfers    repository.TransferReservationRepository
	services     *Services
	config       *config.Config
	now          func() time.Time
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email   service.EmailService
	Seasons service.SeasonService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	reservations repository.ReservationRepository,
	transfers repository.TransferReservationRepository,
	services *Services,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		reservations: reservations,
		transfers:    transfers,
		services:     services,
		config:       cfg,
		now:          time.Now,
	}
}

// Config exposes the runner configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// today is the current calendar day in the business timezone, at midnight UTC.
func (jr *JobRunner) today() time.Time {
	local := jr.now().In(jr.config.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
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

// RunAllDailyJobs runs all daily jobs (for manual execution)
func (jr *JobRunner) RunAllDailyJobs() {
	jr.CheckSeasonDrift()
	jr.SendPickupReminders()
}
