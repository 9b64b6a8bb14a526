package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementReportJob *SettlementReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	platformStatsHandler queries.GetPlatformStatsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementReportJob: NewSettlementReportJob(platformStatsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementReportJob.Stop()
}
