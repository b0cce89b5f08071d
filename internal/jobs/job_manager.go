package jobs

import (
	"fmt"
	"log/slog"

	"milkround/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderSweepJob *StaleOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireStaleOrdersHandler commands.ExpireStaleOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderSweepJob: NewStaleOrderSweepJob(expireStaleOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderSweepJob.Stop()
}
