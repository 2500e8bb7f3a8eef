package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for status-graph violations. It is always
// client-caused: the requested move is not an edge of the lifecycle graph.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// The lifecycle forms a fixed graph:
//
//	Draft ──> Paid ──> InProduction ──> ReadyToShip ──> Shipped ──> Delivered
//	  │         │            │
//	  └─────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. String values double as the persisted
// representation, matching the database enum.
type Status string

const (
	// Draft is the initial status when an order is first created.
	Draft Status = "draft"
	// Paid indicates payment settled and inventory reserved.
	Paid Status = "paid"
	// InProduction indicates a tailor has been assigned and is working the order.
	InProduction Status = "in_production"
	// ReadyToShip indicates production finished, awaiting shipment.
	ReadyToShip Status = "ready_to_ship"
	// Shipped indicates the order left the workshop.
	Shipped Status = "shipped"
	// Delivered is a terminal status: the customer received the order.
	Delivered Status = "delivered"
	// Cancelled is a terminal status reachable from Draft, Paid and InProduction.
	Cancelled Status = "cancelled"
)

// allowedTransitions is the complete edge table of the lifecycle graph.
// Anything not listed here is an invalid transition.
var allowedTransitions = map[Status]map[Status]bool{
	Draft:        {Paid: true, Cancelled: true},
	Paid:         {InProduction: true, Cancelled: true},
	InProduction: {ReadyToShip: true, Cancelled: true},
	ReadyToShip:  {Shipped: true},
	Shipped:      {Delivered: true},
	Delivered:    {},
	Cancelled:    {},
}

// InvalidTransitionError reports a requested move that is not an edge of the
// lifecycle graph. Unwraps to ErrInvalidTransition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions[s]; !ok {
		return fmt.Errorf("%w: %q is not a valid status", ErrInvalidTransition, string(s))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// DeletableStatuses lists the statuses from which an order may be
// hard-deleted. Neither status holds reserved inventory or tailor capacity.
// Storage adapters guard their delete statements with this same list so the
// rule holds even when the status changes concurrently.
func DeletableStatuses() []Status {
	return []Status{Draft, Cancelled}
}

// IsTerminal reports whether no further transitions are possible from s.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0 && allowedTransitions[s] != nil
}

// CanTransitionTo is the O(1) allowed-edges lookup.
// It returns false for any pair outside the table, including unknown statuses.
func (s Status) CanTransitionTo(next Status) bool {
	return allowedTransitions[s][next]
}

// TransitionTo validates the move and returns the new status.
// Returns an InvalidTransitionError if (s, next) is not an edge of the graph.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return "", NewInvalidTransitionError(s, next)
	}
	return next, nil
}
