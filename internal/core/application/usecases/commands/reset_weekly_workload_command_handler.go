package commands

import (
	"context"
)

// ResetWeeklyWorkloadCommandHandler handles the weekly workload reset.
// The reset is a single batch statement: every tailor's workload goes to zero
// and availability is restored, regardless of in-flight assignments. Runs on
// the weekly schedule but can also be invoked directly.
type ResetWeeklyWorkloadCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewResetWeeklyWorkloadCommandHandler creates a handler for the weekly reset.
func NewResetWeeklyWorkloadCommandHandler(uowFactory TailorUoWFactory) ResetWeeklyWorkloadCommandHandler {
	return ResetWeeklyWorkloadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the workload reset command.
func (h ResetWeeklyWorkloadCommandHandler) Handle(ctx context.Context, cmd ResetWeeklyWorkloadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TailorRepository().ResetAllWorkloads(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
