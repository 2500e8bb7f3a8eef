// Package tailorrepo provides data transfer objects and mapping functions for
// tailor persistence. Specialties are stored as a postgres text array.
package tailorrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
)

// TailorDTO represents the database structure for persisting tailor aggregates.
type TailorDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name              string
	Specialties       pq.StringArray `gorm:"type:text[]"`
	CurrentWorkload   int
	MaxWeeklyCapacity int
	IsAvailable       bool `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the database table name for tailor entities.
func (TailorDTO) TableName() string {
	return "tailors"
}

// fromDomain converts a tailor aggregate to its database representation.
func fromDomain(aggregate *tailor.Tailor) TailorDTO {
	specialties := make(pq.StringArray, 0, len(aggregate.Specialties()))
	for _, s := range aggregate.Specialties() {
		specialties = append(specialties, s.String())
	}

	return TailorDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Specialties:       specialties,
		CurrentWorkload:   aggregate.CurrentWorkload(),
		MaxWeeklyCapacity: aggregate.MaxWeeklyCapacity(),
		IsAvailable:       aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO back to a tailor aggregate via
// RestoreTailor, which re-derives availability from workload and capacity.
func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	specialties := make([]tailor.Specialty, 0, len(dto.Specialties))
	for _, raw := range dto.Specialties {
		specialty, specErr := tailor.SpecialtyFromString(raw)
		if specErr != nil {
			return nil, specErr
		}
		specialties = append(specialties, specialty)
	}

	return tailor.RestoreTailor(id, dto.Name, specialties, dto.CurrentWorkload, dto.MaxWeeklyCapacity)
}
