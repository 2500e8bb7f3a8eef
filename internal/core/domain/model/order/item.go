package order

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an OrderItem was not created through
// NewOrderItem or RestoreOrderItem.
var ErrItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a value object describing one line of an order.
// The product name doubles as the inventory SKU the item reserves material from.
// Customizations are free-form key/value pairs; the "type" key drives the
// required-specialty resolution for tailor assignment.
type OrderItem struct {
	productName    string
	quantity       int
	unitPrice      float64
	totalPrice     float64
	customizations map[string]string

	guard guard.ConstructorGuard
}

// NewOrderItem creates a validated order line.
// Quantity must be positive and unit price non-negative;
// total price is always derived as quantity * unitPrice.
func NewOrderItem(productName string, quantity int, unitPrice float64, customizations map[string]string) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return OrderItem{}, err
	}

	item.totalPrice = float64(item.quantity) * item.unitPrice
	item.customizations = customizations
	return item, nil
}

// RestoreOrderItem reconstructs an order line from persistence.
// Validation is identical to NewOrderItem; the total price is re-derived rather
// than trusted from storage.
func RestoreOrderItem(productName string, quantity int, unitPrice float64, customizations map[string]string) (OrderItem, error) {
	return NewOrderItem(productName, quantity, unitPrice, customizations)
}

// Validate ensures the item was created through a constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName returns the product name, which is also the inventory SKU.
func (i OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i OrderItem) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns quantity * unitPrice.
func (i OrderItem) TotalPrice() float64 {
	return i.totalPrice
}

// Customizations returns the opaque customization map. May be nil.
func (i OrderItem) Customizations() map[string]string {
	return i.customizations
}

func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
