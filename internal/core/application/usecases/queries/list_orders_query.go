package queries

import (
	"errors"
	"time"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves order summaries, optionally filtered by status
// and/or customer. Soft-deleted orders are always excluded.
type ListOrdersQuery struct {
	status     *order.Status
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a list query. Both filters are optional;
// nil means no filtering on that dimension.
func NewListOrdersQuery(status *order.Status, customerID *kernel.UUID) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = status
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.customerID = customerID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// CustomerID returns the customer filter, nil when unfiltered.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// ListOrdersQueryResponse is one order summary row.
type ListOrdersQueryResponse struct {
	ID          kernel.UUID `json:"id"`
	CustomerID  kernel.UUID `json:"customerId"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
}
