package jobs

import (
	"fmt"
	"log/slog"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workloadResetJob  *WorkloadResetJob
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up job execution.
func NewJobManager(
	resetWorkloadHandler commands.ResetWeeklyWorkloadCommandHandler,
	lowStockHandler queries.GetLowStockMaterialsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workloadResetJob:  NewWorkloadResetJob(resetWorkloadHandler, logger),
		lowStockReportJob: NewLowStockReportJob(lowStockHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workloadResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start workload reset job: %w", err)
	}

	if err := jm.lowStockReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.workloadResetJob.Stop()
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
	jm.workloadResetJob.Stop()
}
