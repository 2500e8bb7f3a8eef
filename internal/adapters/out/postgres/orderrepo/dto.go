// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Order lines live in their own table; the status history
// is stored as a jsonb document on the order row, append-only by construction.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	TailorID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(32);index"`
	TotalAmount     float64
	ShippingAddress string
	TrackingNumber  string
	StatusHistory   []byte         `gorm:"type:jsonb"`
	IsDeleted       bool           `gorm:"not null;default:false"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line.
// Lines are immutable after creation; updates never touch this table.
type OrderItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ProductName    string
	Quantity       int
	UnitPrice      float64
	TotalPrice     float64
	Customizations []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var tailorID *uuid.UUID
	if id := aggregate.Tailor(); id != nil {
		raw := id.Bytes()
		tailorID = &raw
	}

	history, err := json.Marshal(aggregate.StatusHistory())
	if err != nil {
		return OrderDTO{}, err
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var customizations []byte
		if item.Customizations() != nil {
			if customizations, err = json.Marshal(item.Customizations()); err != nil {
				return OrderDTO{}, err
			}
		}

		items = append(items, OrderItemDTO{
			ID:             uuid.New(),
			OrderID:        aggregate.ID().Bytes(),
			ProductName:    item.ProductName(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice(),
			TotalPrice:     item.TotalPrice(),
			Customizations: customizations,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		TailorID:        tailorID,
		Status:          aggregate.Status().String(),
		TotalAmount:     aggregate.TotalAmount(),
		ShippingAddress: aggregate.ShippingAddress(),
		TrackingNumber:  aggregate.TrackingNumber(),
		StatusHistory:   history,
		IsDeleted:       aggregate.IsDeleted(),
		Items:           items,
	}, nil
}

// toDomain converts a database DTO back to an order aggregate via RestoreOrder,
// which re-checks the history invariant against the persisted status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var tailorID *kernel.UUID
	if dto.TailorID != nil {
		assigned, tailorErr := kernel.UUIDFromBytes((*dto.TailorID)[:])
		if tailorErr != nil {
			return nil, tailorErr
		}
		tailorID = &assigned
	}

	items := make([]order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var customizations map[string]string
		if len(itemDTO.Customizations) > 0 {
			if err = json.Unmarshal(itemDTO.Customizations, &customizations); err != nil {
				return nil, err
			}
		}

		item, itemErr := order.RestoreOrderItem(
			itemDTO.ProductName, itemDTO.Quantity, itemDTO.UnitPrice, customizations,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var history []order.HistoryEntry
	if len(dto.StatusHistory) > 0 {
		if err = json.Unmarshal(dto.StatusHistory, &history); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id, customerID, items,
		order.Status(dto.Status),
		tailorID,
		dto.ShippingAddress, dto.TrackingNumber,
		history,
		dto.IsDeleted,
	)
}
