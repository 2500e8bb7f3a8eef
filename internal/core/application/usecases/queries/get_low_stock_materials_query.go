package queries

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrGetLowStockMaterialsQueryIsNotConstructed = errors.New(
	"GetLowStockMaterialsQuery must be created via NewGetLowStockMaterialsQuery constructor",
)

// GetLowStockMaterialsQuery retrieves all materials at or below their reorder
// point. Parameterless; used by the periodic low-stock report and the
// inventory endpoint.
type GetLowStockMaterialsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockMaterialsQuery creates a low-stock query.
func NewGetLowStockMaterialsQuery() GetLowStockMaterialsQuery {
	return GetLowStockMaterialsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockMaterialsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockMaterialsQueryIsNotConstructed)
}

// GetLowStockMaterialsQueryResponse is one material in need of reordering.
type GetLowStockMaterialsQueryResponse struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	ReorderPoint int     `json:"reorderPoint"`
	UnitPrice    float64 `json:"unitPrice"`
}
