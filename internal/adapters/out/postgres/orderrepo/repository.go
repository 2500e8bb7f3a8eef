package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/pgerr"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order. Lines are immutable and stay
// untouched; the column list is explicit so zero values (cleared tailor,
// false flags) are written rather than skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":          dto.Status,
			"tailor_id":       dto.TailorID,
			"total_amount":    dto.TotalAmount,
			"tracking_number": dto.TrackingNumber,
			"status_history":  dto.StatusHistory,
			"is_deleted":      dto.IsDeleted,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Translate(err, "order")
	}

	return toDomain(dto)
}

// UpdateStatusCAS moves the status from "from" to "to" only if the row still
// holds "from". Zero affected rows means a concurrent transition already
// claimed the edge, reported as a ConcurrentUpdateConflict.
func (r *GormOrderRepository) UpdateStatusCAS(ctx context.Context, id kernel.UUID, from, to order.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrentUpdateConflictError("order")
	}

	return nil
}

// Delete removes the order row; its lines go with it via the cascade
// constraint. The statement is guarded on the deletable statuses so a
// concurrent transition between the caller's read and this delete cannot
// remove an order that has already moved on. Zero affected rows means the
// order either changed status (ConcurrentUpdateConflict) or is gone
// (ObjectNotFound).
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	deletable := order.DeletableStatuses()
	statuses := make([]string, 0, len(deletable))
	for _, s := range deletable {
		statuses = append(statuses, s.String())
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id.Bytes(), statuses).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", id.Bytes()).
			Count(&count).Error
		if err != nil {
			return pgerr.Translate(err, "order")
		}
		if count > 0 {
			return errs.NewConcurrentUpdateConflictError("order")
		}
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// MarkDeleted sets the soft-delete flag without removing the row.
func (r *GormOrderRepository) MarkDeleted(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_deleted", true)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
