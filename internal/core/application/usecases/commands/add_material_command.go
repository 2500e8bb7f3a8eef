package commands

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrAddMaterialCommandIsNotConstructed = errors.New(
	"AddMaterialCommand must be created via NewAddMaterialCommand constructor",
)

// AddMaterialCommand represents a request to register a new inventory
// material. The SKU is the record identity that order lines reserve against.
type AddMaterialCommand struct { //nolint:recvcheck //using for validation
	sku          string
	name         string
	description  string
	quantity     int
	reorderPoint int
	unitPrice    float64

	guard guard.ConstructorGuard
}

// NewAddMaterialCommand creates a command to register a material.
// The SKU and name are required; quantity and reorder point must be
// non-negative and the unit price must not be negative.
func NewAddMaterialCommand(
	sku, name, description string,
	quantity, reorderPoint int,
	unitPrice float64,
) (AddMaterialCommand, error) {
	cmd := AddMaterialCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSKU(sku),
		cmd.setName(name),
		cmd.setQuantity(quantity),
		cmd.setReorderPoint(reorderPoint),
		cmd.setUnitPrice(unitPrice),
	); err != nil {
		return AddMaterialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMaterialCommand) Validate() error {
	return c.guard.Validate(ErrAddMaterialCommandIsNotConstructed)
}

// SKU returns the material's stock keeping unit.
func (c AddMaterialCommand) SKU() string {
	return c.sku
}

// Name returns the material name.
func (c AddMaterialCommand) Name() string {
	return c.name
}

// Description returns the free-form description.
func (c AddMaterialCommand) Description() string {
	return c.description
}

// Quantity returns the opening stock level.
func (c AddMaterialCommand) Quantity() int {
	return c.quantity
}

// ReorderPoint returns the low-stock threshold.
func (c AddMaterialCommand) ReorderPoint() int {
	return c.reorderPoint
}

// UnitPrice returns the per-unit price.
func (c AddMaterialCommand) UnitPrice() float64 {
	return c.unitPrice
}

func (c *AddMaterialCommand) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	c.sku = sku
	return nil
}

func (c *AddMaterialCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("materialName")
	}

	c.name = name
	return nil
}

func (c *AddMaterialCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	c.quantity = quantity
	return nil
}

func (c *AddMaterialCommand) setReorderPoint(reorderPoint int) error {
	if reorderPoint < 0 {
		return errs.NewValueIsOutOfRangeError("reorderPoint", reorderPoint, 0, "unbounded")
	}

	c.reorderPoint = reorderPoint
	return nil
}

func (c *AddMaterialCommand) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	c.unitPrice = unitPrice
	return nil
}
