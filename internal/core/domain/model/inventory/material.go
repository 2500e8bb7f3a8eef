// Package inventory contains the Material aggregate: one row of contended
// stock keyed by SKU, with a non-negative quantity invariant.
package inventory

import (
	"errors"
	"fmt"

	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var (
	// ErrMaterialIsNotConstructed is returned when a Material instance was not
	// created through NewMaterial or RestoreMaterial.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")

	// ErrInsufficientStock is the sentinel for reservation failures.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reservation that would drive a material's
// quantity negative. Unwraps to ErrInsufficientStock.
type InsufficientStockError struct {
	SKU       string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for the given SKU.
func NewInsufficientStockError(sku string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{SKU: sku, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s (requested %d, available %d)",
		ErrInsufficientStock, e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Material is one stocked inventory record. The SKU is the aggregate identity;
// order items reference it through their product name.
//
// Invariant: quantity never goes negative. Reserve refuses any decrement that
// would break this, and the caller is expected to hold the row lock for the
// whole reserve-or-release so the check-then-mutate cannot interleave.
type Material struct {
	sku          string
	name         string
	description  string
	quantity     int
	reorderPoint int
	unitPrice    float64

	guard guard.ConstructorGuard
}

// NewMaterial creates a validated material record.
func NewMaterial(sku, name, description string, quantity, reorderPoint int, unitPrice float64) (*Material, error) {
	m := &Material{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setSKU(sku),
		m.setName(name),
		m.setQuantity(quantity),
		m.setReorderPoint(reorderPoint),
		m.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a material from persistence.
func RestoreMaterial(sku, name, description string, quantity, reorderPoint int, unitPrice float64) (*Material, error) {
	return NewMaterial(sku, name, description, quantity, reorderPoint, unitPrice)
}

// Validate ensures the Material was properly constructed.
func (m *Material) Validate() error {
	if m == nil {
		return ErrMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialIsNotConstructed)
}

// Reserve decrements the quantity by the requested amount.
// Fails with an InsufficientStockError if the stock cannot cover the request;
// the material is left unchanged on failure.
func (m *Material) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if m.quantity < quantity {
		return NewInsufficientStockError(m.sku, quantity, m.quantity)
	}

	m.quantity -= quantity
	return nil
}

// Release returns previously reserved quantity to stock.
func (m *Material) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	m.quantity += quantity
	return nil
}

// IsLowStock reports whether the quantity has fallen to the reorder point.
func (m *Material) IsLowStock() bool {
	return m.quantity <= m.reorderPoint
}

// SKU returns the aggregate identity.
func (m *Material) SKU() string {
	return m.sku
}

// Name returns the human-readable material name.
func (m *Material) Name() string {
	return m.name
}

// Description returns the free-form material description.
func (m *Material) Description() string {
	return m.description
}

// Quantity returns the current stock level.
func (m *Material) Quantity() int {
	return m.quantity
}

// ReorderPoint returns the low-stock threshold.
func (m *Material) ReorderPoint() int {
	return m.reorderPoint
}

// UnitPrice returns the per-unit material price.
func (m *Material) UnitPrice() float64 {
	return m.unitPrice
}

func (m *Material) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	m.sku = sku
	return nil
}

func (m *Material) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("materialName")
	}
	m.name = name
	return nil
}

func (m *Material) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	m.quantity = quantity
	return nil
}

func (m *Material) setReorderPoint(reorderPoint int) error {
	if reorderPoint < 0 {
		return errs.NewValueIsOutOfRangeError("reorderPoint", reorderPoint, 0, "unbounded")
	}
	m.reorderPoint = reorderPoint
	return nil
}

func (m *Material) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	m.unitPrice = unitPrice
	return nil
}
