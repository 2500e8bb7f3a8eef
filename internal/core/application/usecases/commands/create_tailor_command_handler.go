package commands

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
)

// CreateTailorCommandHandler handles tailor registration.
// New tailors start with zero workload and are immediately eligible for
// assignment.
type CreateTailorCommandHandler struct {
	uowFactory TailorUoWFactory
}

// NewCreateTailorCommandHandler creates a handler for tailor registration.
func NewCreateTailorCommandHandler(uowFactory TailorUoWFactory) CreateTailorCommandHandler {
	return CreateTailorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tailor registration command.
func (h CreateTailorCommandHandler) Handle(ctx context.Context, cmd CreateTailorCommand) error {
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

	newTailor, err := tailor.NewTailor(cmd.TailorID(), cmd.Name(), cmd.Specialties(), cmd.MaxWeeklyCapacity())
	if err != nil {
		return err
	}

	if err = uow.TailorRepository().Add(ctx, newTailor); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
