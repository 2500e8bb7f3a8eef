package ports

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for material records.
// Materials are keyed by SKU; order items reference them by product name.
type InventoryRepository interface {
	// Add persists a new material record.
	// Fails with errs.ConcurrentUpdateConflictError if the SKU already exists.
	Add(ctx context.Context, material *inventory.Material) error

	// Update persists changes to an existing material record.
	Update(ctx context.Context, material *inventory.Material) error

	// GetBySKU retrieves a material without locking it.
	// Returns errs.ObjectNotFoundError if the SKU is unknown.
	GetBySKU(ctx context.Context, sku string) (*inventory.Material, error)

	// GetBySKUForUpdate retrieves a material and locks its row until the
	// enclosing transaction commits or rolls back. Reservation and release
	// must go through this method so the read-check-write on quantity can
	// never interleave with another transition.
	GetBySKUForUpdate(ctx context.Context, sku string) (*inventory.Material, error)

	// FindLowStock returns all materials with quantity at or below their
	// reorder point. Read-only; takes no locks.
	FindLowStock(ctx context.Context) ([]*inventory.Material, error)
}
