package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotDeletable is returned when attempting to hard-delete an order
	// that is neither in Draft nor Cancelled status.
	ErrOrderIsNotDeletable = errors.New("only draft or cancelled orders can be deleted")
)

// HistoryEntry is one element of the append-only status history.
// It records the status the order entered, when, and an optional note.
type HistoryEntry struct {
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Order is the aggregate root for a customer order. It owns the order lines,
// the lifecycle status and its append-only history, and the optional tailor
// assignment made during production.
//
// Invariants maintained by the aggregate:
//   - totalAmount always equals the sum of item total prices
//   - the last statusHistory entry always matches the current status
//   - status only changes along the edges of the lifecycle graph (see Status)
//   - at least one order item exists
//
// Resource side effects of a transition (inventory reservation, tailor
// workload) are deliberately not applied here: they belong to the fulfillment
// coordinator, which runs them in the same storage transaction as the status
// change. The aggregate only guards the pure state-machine rules.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	items           []OrderItem
	totalAmount     float64
	status          Status
	tailorID        *kernel.UUID
	shippingAddress string
	trackingNumber  string
	statusHistory   []HistoryEntry
	isDeleted       bool

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Draft status with an opening history entry.
// The total amount is derived from the items; at least one item is required.
func NewOrder(id, customerID kernel.UUID, items []OrderItem, shippingAddress string) (*Order, error) {
	o := &Order{
		status:          Draft,
		shippingAddress: shippingAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.statusHistory = []HistoryEntry{{
		Status:    Draft,
		Timestamp: time.Now().UTC(),
		Note:      "Order created",
	}}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The total amount is re-derived from the items. The history must be non-empty
// and its last entry must match the persisted status; a mismatch means the
// stored row violates the aggregate invariant and must not be loaded.
func RestoreOrder(
	id, customerID kernel.UUID,
	items []OrderItem,
	status Status,
	tailorID *kernel.UUID,
	shippingAddress, trackingNumber string,
	statusHistory []HistoryEntry,
	isDeleted bool,
) (*Order, error) {
	o := &Order{
		shippingAddress: shippingAddress,
		trackingNumber:  trackingNumber,
		isDeleted:       isDeleted,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if tailorID != nil {
		if err := tailorID.Validate(); err != nil {
			return nil, err
		}
		o.tailorID = tailorID
	}

	if len(statusHistory) == 0 || statusHistory[len(statusHistory)-1].Status != status {
		return nil, errs.NewValueIsInvalidErrorWithCause("statusHistory",
			fmt.Errorf("last history entry must match status %s", status))
	}

	o.status = status
	o.statusHistory = statusHistory
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// TransitionTo moves the order to newStatus and appends a history entry.
// If note is empty a default "Status updated to <status>" note is recorded.
// Returns an InvalidTransitionError when (current, newStatus) is not an edge
// of the lifecycle graph; the aggregate is left unchanged on failure.
func (o *Order) TransitionTo(newStatus Status, note string) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if note == "" {
		note = fmt.Sprintf("Status updated to %s", next)
	}

	o.status = next
	o.statusHistory = append(o.statusHistory, HistoryEntry{
		Status:    next,
		Timestamp: time.Now().UTC(),
		Note:      note,
	})
	return nil
}

// AssignTailor records the tailor working this order.
// The workload bookkeeping on the tailor itself is the arbiter's job.
func (o *Order) AssignTailor(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}
	o.tailorID = &tailorID
	return nil
}

// SetTrackingNumber records the shipment tracking number.
func (o *Order) SetTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	o.trackingNumber = trackingNumber
	return nil
}

// IsDeletable reports whether the order may be hard-deleted.
// Only Draft and Cancelled orders qualify; anything else is soft-deleted by
// an external collaborator via MarkDeleted.
func (o *Order) IsDeletable() bool {
	for _, s := range DeletableStatuses() {
		if o.status == s {
			return true
		}
	}
	return false
}

// MarkDeleted sets the soft-delete flag. The row stays in storage.
func (o *Order) MarkDeleted() {
	o.isDeleted = true
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns the order lines. The slice must be treated as read-only.
func (o *Order) Items() []OrderItem {
	return o.items
}

// TotalAmount returns the sum of all item total prices.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Tailor returns the assigned tailor's ID, or nil if none was assigned.
func (o *Order) Tailor() *kernel.UUID {
	return o.tailorID
}

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// TrackingNumber returns the shipment tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// StatusHistory returns the append-only history. Must be treated as read-only.
func (o *Order) StatusHistory() []HistoryEntry {
	return o.statusHistory
}

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.TotalPrice()
	}

	o.items = items
	o.totalAmount = total
	return nil
}
