package inventoryrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres/pgerr"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// GormInventoryRepository implements InventoryRepository using GORM.
// Materials are identified by SKU rather than UUID, so they stay outside the
// unit of work's aggregate tracking.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Add saves a new material to the database. A duplicate SKU violates the
// primary key and surfaces as a DuplicateKey error.
func (r *GormInventoryRepository) Add(ctx context.Context, material *inventory.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}

	dto := fromDomain(material)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "material")
	}

	return nil
}

// Update saves changes to an existing material.
func (r *GormInventoryRepository) Update(ctx context.Context, material *inventory.Material) error {
	if err := material.Validate(); err != nil {
		return err
	}

	dto := fromDomain(material)
	result := r.db.WithContext(ctx).Model(&MaterialDTO{}).
		Where("sku = ?", dto.SKU).
		Updates(map[string]any{
			"name":          dto.Name,
			"description":   dto.Description,
			"quantity":      dto.Quantity,
			"reorder_point": dto.ReorderPoint,
			"unit_price":    dto.UnitPrice,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "material")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("material", material.SKU())
	}

	return nil
}

// GetBySKU retrieves a material without locking its row.
func (r *GormInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Material, error) {
	return r.get(ctx, sku, false)
}

// GetBySKUForUpdate retrieves a material and locks its row for the duration
// of the enclosing transaction.
func (r *GormInventoryRepository) GetBySKUForUpdate(ctx context.Context, sku string) (*inventory.Material, error) {
	return r.get(ctx, sku, true)
}

func (r *GormInventoryRepository) get(ctx context.Context, sku string, forUpdate bool) (*inventory.Material, error) {
	if sku == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto MaterialDTO
	if err := db.First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", sku)
		}
		return nil, pgerr.Translate(err, "material")
	}

	return toDomain(dto)
}

// FindLowStock returns all materials at or below their reorder point,
// ordered by SKU. Read-only; takes no locks.
func (r *GormInventoryRepository) FindLowStock(ctx context.Context) ([]*inventory.Material, error) {
	var dtos []MaterialDTO
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_point").
		Order("sku").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, "material")
	}

	materials := make([]*inventory.Material, 0, len(dtos))
	for _, dto := range dtos {
		material, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		materials = append(materials, material)
	}

	return materials, nil
}
