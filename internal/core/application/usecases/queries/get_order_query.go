// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read directly from the database,
// returning plain response structs shaped for the callers.
package queries

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and full status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one order line in a query response.
type OrderItemResponse struct {
	ProductName    string            `json:"productName"`
	Quantity       int               `json:"quantity"`
	UnitPrice      float64           `json:"unitPrice"`
	TotalPrice     float64           `json:"totalPrice"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID              kernel.UUID          `json:"id"`
	CustomerID      kernel.UUID          `json:"customerId"`
	Status          string               `json:"status"`
	TotalAmount     float64              `json:"totalAmount"`
	TailorID        *kernel.UUID         `json:"tailorId,omitempty"`
	ShippingAddress string               `json:"shippingAddress"`
	TrackingNumber  string               `json:"trackingNumber,omitempty"`
	Items           []OrderItemResponse  `json:"items"`
	StatusHistory   []order.HistoryEntry `json:"statusHistory"`
}
