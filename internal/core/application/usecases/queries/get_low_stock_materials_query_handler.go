package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetLowStockMaterialsQueryHandler scans inventory for materials that need
// reordering. Read-only; takes no row locks.
type GetLowStockMaterialsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockMaterialsQueryHandler creates a handler for low-stock queries.
func NewGetLowStockMaterialsQueryHandler(db *gorm.DB) GetLowStockMaterialsQueryHandler {
	return GetLowStockMaterialsQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by SKU for stable reports.
func (h GetLowStockMaterialsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockMaterialsQuery,
) ([]GetLowStockMaterialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			name,
			quantity,
			reorder_point,
			unit_price
		FROM materials
		WHERE quantity <= reorder_point
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := make([]GetLowStockMaterialsQueryResponse, 0)
	for rows.Next() {
		var resp GetLowStockMaterialsQueryResponse

		if err = rows.Scan(
			&resp.SKU,
			&resp.Name,
			&resp.Quantity,
			&resp.ReorderPoint,
			&resp.UnitPrice,
		); err != nil {
			return nil, err
		}

		materials = append(materials, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
