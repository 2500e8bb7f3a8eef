package commands

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrApplyTransitionCommandIsNotConstructed = errors.New(
	"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
)

// ApplyTransitionCommand represents a request to move an order to a new
// lifecycle status. The note is optional and recorded in the status history;
// the tracking number is only consulted when transitioning to shipped.
//
// Example:
//
//	cmd, err := NewApplyTransitionCommand(orderID, order.Paid, "payment confirmed", "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // rejected by the lifecycle table
//	case errors.Is(err, errs.ErrConcurrentUpdateConflict):
//	    // another transition won the race; safe to retry
//	}
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	targetStatus   order.Status
	note           string
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewApplyTransitionCommand creates a command to transition an order.
// Validates the order ID and that the target is a known status; whether the
// transition edge itself is allowed is decided against the loaded order.
func NewApplyTransitionCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
	note, trackingNumber string,
) (ApplyTransitionCommand, error) {
	cmd := ApplyTransitionCommand{
		note:           note,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
	); err != nil {
		return ApplyTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyTransitionCommandIsNotConstructed if validation fails.
func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ApplyTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested destination status.
func (c ApplyTransitionCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Note returns the optional history note, empty for the default.
func (c ApplyTransitionCommand) Note() string {
	return c.note
}

// TrackingNumber returns the optional tracking number for the shipped
// transition; one is generated when empty.
func (c ApplyTransitionCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ApplyTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyTransitionCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
