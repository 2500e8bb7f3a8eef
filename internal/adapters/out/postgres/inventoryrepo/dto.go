// Package inventoryrepo provides data transfer objects and mapping functions
// for material persistence. Materials are keyed by SKU, the identifier order
// lines reserve against.
package inventoryrepo

import (
	"time"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
)

// MaterialDTO represents the database structure for persisting materials.
type MaterialDTO struct {
	SKU          string `gorm:"primaryKey"`
	Name         string
	Description  string
	Quantity     int
	ReorderPoint int
	UnitPrice    float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for material entities.
func (MaterialDTO) TableName() string {
	return "materials"
}

// fromDomain converts a material aggregate to its database representation.
func fromDomain(material *inventory.Material) MaterialDTO {
	return MaterialDTO{
		SKU:          material.SKU(),
		Name:         material.Name(),
		Description:  material.Description(),
		Quantity:     material.Quantity(),
		ReorderPoint: material.ReorderPoint(),
		UnitPrice:    material.UnitPrice(),
	}
}

// toDomain converts a database DTO back to a material aggregate.
func toDomain(dto MaterialDTO) (*inventory.Material, error) {
	return inventory.RestoreMaterial(
		dto.SKU, dto.Name, dto.Description,
		dto.Quantity, dto.ReorderPoint, dto.UnitPrice,
	)
}
