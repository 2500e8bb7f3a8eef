package commands

import (
	"context"
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles hard deletion of orders.
// The deletability rule lives on the aggregate: only draft and cancelled
// orders qualify, because no inventory or tailor resource is held in either
// status. The read here is unlocked, so the repository delete is guarded on
// the same deletable statuses; if a concurrent transition wins the race the
// delete affects zero rows and surfaces as ErrConcurrentUpdateConflict
// instead of removing an order that now holds resources.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Returns ErrNoOrderFound for unknown orders and order.ErrOrderIsNotDeletable
// for orders past the draft/cancelled statuses.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if !ord.IsDeletable() {
		return order.ErrOrderIsNotDeletable
	}

	if err = orderRepo.Delete(ctx, ord.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
