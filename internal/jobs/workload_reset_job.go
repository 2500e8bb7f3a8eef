package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
)

// WorkloadResetJob clears every tailor's weekly workload counter.
// Runs at midnight on Monday so the new production week starts with full
// capacity across the workshop.
type WorkloadResetJob struct {
	handler commands.ResetWeeklyWorkloadCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewWorkloadResetJob creates the weekly workload reset job.
func NewWorkloadResetJob(handler commands.ResetWeeklyWorkloadCommandHandler, logger *slog.Logger) *WorkloadResetJob {
	return &WorkloadResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "workload_reset_job"),
	}
}

// Start schedules the reset for every Monday at midnight.
func (j *WorkloadResetJob) Start() error {
	_, err := j.cron.AddFunc("0 0 0 * * MON", func() {
		ctx := context.Background()
		cmd := commands.NewResetWeeklyWorkloadCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Weekly workload reset failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Weekly tailor workloads reset")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Workload reset job started (running every Monday at midnight)")
	return nil
}

// Stop stops the workload reset job.
func (j *WorkloadResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Workload reset job stopped")
}
