package tailorrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/pgerr"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// GormTailorRepository implements TailorRepository using GORM.
type GormTailorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTailorRepository creates a new GORM tailor repository.
func NewGormTailorRepository(db *gorm.DB, tracker aggregateTracker) *GormTailorRepository {
	return &GormTailorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tailor to the database.
func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "tailor")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing tailor. The column list is explicit so
// a false availability flag is written rather than skipped.
func (r *GormTailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TailorDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":                dto.Name,
			"specialties":         dto.Specialties,
			"current_workload":    dto.CurrentWorkload,
			"max_weekly_capacity": dto.MaxWeeklyCapacity,
			"is_available":        dto.IsAvailable,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "tailor")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tailor", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tailor by ID without locking the row.
func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a tailor and locks its row for the duration of the
// enclosing transaction.
func (r *GormTailorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	return r.get(ctx, id, true)
}

func (r *GormTailorRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto TailorDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tailor", id.String())
		}
		return nil, pgerr.Translate(err, "tailor")
	}

	return toDomain(dto)
}

// GetAllAvailable returns tailors with free capacity, ordered ascending by
// current workload. The ordering feeds directly into dispatch selection.
func (r *GormTailorRepository) GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error) {
	var dtos []TailorDTO
	err := r.db.WithContext(ctx).
		Where("is_available = TRUE AND current_workload < max_weekly_capacity").
		Order("current_workload ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, "tailor")
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		tailors = append(tailors, aggregate)
	}

	return tailors, nil
}

// ResetAllWorkloads zeroes every tailor's workload and restores availability
// in one statement.
func (r *GormTailorRepository) ResetAllWorkloads(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Exec("UPDATE tailors SET current_workload = 0, is_available = TRUE, updated_at = NOW()").Error
	if err != nil {
		return pgerr.Translate(err, "tailor")
	}

	return nil
}
