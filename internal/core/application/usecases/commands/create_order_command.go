package commands

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to create a new customer order.
// Items arrive as already validated order lines; the order starts its life in
// draft status and reserves nothing until it is paid.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := order.NewOrderItem("silk-02", 2, 120, map[string]string{"type": "dress"})
//	cmd, err := NewCreateOrderCommand(orderID, customerID, []order.OrderItem{item}, "12 Ikoyi Rd")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	items           []order.OrderItem
	shippingAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates both IDs, requires at least one constructed item and a non-empty
// shipping address.
func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	items []order.OrderItem,
	shippingAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the order lines.
func (c CreateOrderCommand) Items() []order.OrderItem {
	return c.items
}

// ShippingAddress returns the delivery address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.OrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress string) error {
	if shippingAddress == "" {
		return errs.NewValueIsRequiredError("shippingAddress")
	}

	c.shippingAddress = shippingAddress
	return nil
}
