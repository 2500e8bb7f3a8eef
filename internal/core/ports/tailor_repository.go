package ports

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
)

// TailorRepository defines the persistence contract for tailor aggregates.
type TailorRepository interface {
	// Add persists a new tailor aggregate.
	Add(ctx context.Context, aggregate *tailor.Tailor) error

	// Update persists changes to an existing tailor aggregate, including the
	// derived availability flag.
	Update(ctx context.Context, aggregate *tailor.Tailor) error

	// Get retrieves a tailor by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetForUpdate retrieves a tailor and locks its row until the enclosing
	// transaction ends. Assignment must re-verify availability on the locked
	// row: the candidate list is read without locks and may be stale.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error)

	// GetAllAvailable returns tailors with free capacity, ordered ascending by
	// current workload. The ordering is part of the selection contract.
	GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error)

	// ResetAllWorkloads unconditionally zeroes every tailor's workload and
	// restores availability. Triggered by the weekly schedule.
	ResetAllWorkloads(ctx context.Context) error
}
