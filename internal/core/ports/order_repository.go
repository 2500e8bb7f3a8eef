// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the notification trigger.
package ports

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: items stay
	// untouched (they are immutable after creation), everything else is
	// written, including the appended status history.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatusCAS performs the compare-and-swap status update: it sets the
	// status to "to" only where the row still holds "from". Zero affected rows
	// means a concurrent transition already moved the order out of "from", and
	// the method fails with errs.ConcurrentUpdateConflictError. Each order
	// therefore leaves a given status exactly once.
	UpdateStatusCAS(ctx context.Context, id kernel.UUID, from, to order.Status) error

	// Delete hard-deletes the order row and its items. The statement only
	// matches orders in a deletable status; if the order exists but has moved
	// on, the method fails with errs.ConcurrentUpdateConflictError, and if it
	// does not exist, with errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// MarkDeleted sets the soft-delete flag without removing the row.
	// Used by external collaborators for orders past Draft/Cancelled.
	MarkDeleted(ctx context.Context, id kernel.UUID) error
}
