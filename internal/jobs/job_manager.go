package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailyReportJob     *DailyReportJob
	pendingReminderJob *PendingReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reportHandler queries.GetDeliveryReportQueryHandler,
	pendingHandler queries.GetPendingOrdersQueryHandler,
	messenger ports.Messenger,
	adminIDs []kernel.UserID,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailyReportJob:     NewDailyReportJob(reportHandler, messenger, adminIDs, logger),
		pendingReminderJob: NewPendingReminderJob(pendingHandler, messenger, adminIDs, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily report job: %w", err)
	}

	if err := jm.pendingReminderJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dailyReportJob.Stop()
		return fmt.Errorf("failed to start pending reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingReminderJob.Stop()
	jm.dailyReportJob.Stop()
}
