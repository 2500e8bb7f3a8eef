package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/services"
	"github.com/kossylee/fashionhive-backend/internal/core/ports"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// ErrNoOrderFound is returned when the order to transition does not exist
// or was soft-deleted.
var ErrNoOrderFound = errors.New("no order found")

const notifyTimeout = 5 * time.Second

// ApplyTransitionCommandHandler is the fulfillment coordinator. It moves an
// order along its lifecycle and applies the resource side effects of the
// transition inside one transaction:
//
//   - to paid: reserve inventory for every order line, all-or-nothing
//   - to in_production: select a tailor, lock and re-verify it, take one
//     workload slot
//   - to shipped: record the tracking number
//   - to cancelled from paid/in_production/ready_to_ship: release the
//     reserved inventory and free the assigned tailor's slot
//
// The status row itself is claimed with a compare-and-swap on the previous
// status, so of N concurrent identical transitions exactly one commits and the
// rest fail with errs.ErrConcurrentUpdateConflict. Row locks are always taken
// in the same order (order row, inventory rows sorted by SKU, tailor row) to
// keep concurrent transitions deadlock-free.
//
// After a successful commit the notifier is invoked asynchronously; a
// notification failure is logged and never affects the committed transition.
type ApplyTransitionCommandHandler struct {
	uowFactory UoWFactory
	resolver   services.SpecialtyResolver
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

// NewApplyTransitionCommandHandler creates the fulfillment coordinator.
// The notifier may be nil, in which case commits are silent.
func NewApplyTransitionCommandHandler(
	uowFactory UoWFactory,
	resolver services.SpecialtyResolver,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one transition request.
// Returns order.ErrInvalidTransition for edges outside the lifecycle table,
// errs.ErrConcurrentUpdateConflict when a concurrent transition won the race,
// inventory.ErrInsufficientStock when stock cannot cover the order, and
// services.ErrNoAvailableTailor when no qualified tailor has capacity.
func (h ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) error {
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
	if ord.IsDeleted() {
		return ErrNoOrderFound
	}

	from := ord.Status()

	if err = ord.TransitionTo(cmd.TargetStatus(), cmd.Note()); err != nil {
		return err
	}

	// The CAS claims the edge: zero affected rows means another transition
	// already moved the order out of the from-status.
	if err = orderRepo.UpdateStatusCAS(ctx, ord.ID(), from, ord.Status()); err != nil {
		return err
	}

	if err = h.applySideEffects(ctx, uow, ord, from, cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifyAsync(ord)
	return nil
}

func (h ApplyTransitionCommandHandler) applySideEffects(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	from order.Status,
	trackingNumber string,
) error {
	switch ord.Status() {
	case order.Paid:
		return reserveInventory(ctx, uow.InventoryRepository(), ord.Items())
	case order.InProduction:
		return h.assignTailor(ctx, uow.TailorRepository(), ord)
	case order.Shipped:
		if trackingNumber == "" {
			trackingNumber = fmt.Sprintf("TRK-%s", kernel.NewUUID())
		}
		return ord.SetTrackingNumber(trackingNumber)
	case order.Cancelled:
		return h.releaseResources(ctx, uow, ord, from)
	default:
		return nil
	}
}

// reserveInventory locks and decrements the material rows backing the order
// lines. Quantities are aggregated per SKU first and rows are locked in SKU
// order. Any shortfall aborts the whole transition.
func reserveInventory(ctx context.Context, repo ports.InventoryRepository, items []order.OrderItem) error {
	required := quantitiesBySKU(items)
	for _, sku := range sortedSKUs(required) {
		material, err := repo.GetBySKUForUpdate(ctx, sku)
		if err != nil {
			return err
		}

		if err = material.Reserve(required[sku]); err != nil {
			return err
		}

		if err = repo.Update(ctx, material); err != nil {
			return err
		}
	}

	return nil
}

// releaseInventory returns the reserved quantities to stock, locking rows in
// the same SKU order as reservation.
func releaseInventory(ctx context.Context, repo ports.InventoryRepository, items []order.OrderItem) error {
	released := quantitiesBySKU(items)
	for _, sku := range sortedSKUs(released) {
		material, err := repo.GetBySKUForUpdate(ctx, sku)
		if err != nil {
			return err
		}

		if err = material.Release(released[sku]); err != nil {
			return err
		}

		if err = repo.Update(ctx, material); err != nil {
			return err
		}
	}

	return nil
}

// assignTailor selects a tailor for the order and takes one workload slot.
// The candidate list is read without locks, so the chosen row is locked and
// re-verified before the increment; a candidate that lost its slot in the
// meantime fails the transition the same way an empty candidate list does.
func (h ApplyTransitionCommandHandler) assignTailor(
	ctx context.Context,
	repo ports.TailorRepository,
	ord *order.Order,
) error {
	required := h.resolver.Resolve(ord.Items())

	candidates, err := repo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	selected, err := services.NewTailorDispatcher().SelectFor(required, candidates)
	if err != nil {
		return err
	}

	locked, err := repo.GetForUpdate(ctx, selected.ID())
	if err != nil {
		return err
	}

	if !locked.CanTakeOrder() || !locked.HasSpecialties(required) {
		return services.ErrNoAvailableTailor
	}

	if err = locked.ApplyWorkloadDelta(1); err != nil {
		return err
	}

	if err = repo.Update(ctx, locked); err != nil {
		return err
	}

	return ord.AssignTailor(locked.ID())
}

// releaseResources undoes the resource effects of a cancelled order. Stock was
// only reserved if the order had passed the paid transition, so the release is
// keyed off the status the order held before cancellation.
func (h ApplyTransitionCommandHandler) releaseResources(
	ctx context.Context,
	uow UoW,
	ord *order.Order,
	from order.Status,
) error {
	if from != order.Paid && from != order.InProduction && from != order.ReadyToShip {
		return nil
	}

	if err := releaseInventory(ctx, uow.InventoryRepository(), ord.Items()); err != nil {
		return err
	}

	tailorID := ord.Tailor()
	if tailorID == nil {
		return nil
	}

	tailorRepo := uow.TailorRepository()
	assigned, err := tailorRepo.GetForUpdate(ctx, *tailorID)
	if err != nil {
		return err
	}

	if err = assigned.ApplyWorkloadDelta(-1); err != nil {
		return err
	}

	return tailorRepo.Update(ctx, assigned)
}

// notifyAsync fires the post-commit notification without blocking the caller.
// Best effort: the transition is already committed, failures are only logged.
func (h ApplyTransitionCommandHandler) notifyAsync(ord *order.Order) {
	if h.notifier == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := h.notifier.NotifyOrderStatusChanged(ctx, ord); err != nil && h.logger != nil {
			h.logger.Warn("order status notification failed",
				"orderId", ord.ID().String(),
				"status", ord.Status().String(),
				"error", err)
		}
	}()
}

func quantitiesBySKU(items []order.OrderItem) map[string]int {
	quantities := make(map[string]int, len(items))
	for _, item := range items {
		quantities[item.ProductName()] += item.Quantity()
	}
	return quantities
}

func sortedSKUs(quantities map[string]int) []string {
	skus := make([]string, 0, len(quantities))
	for sku := range quantities {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}
