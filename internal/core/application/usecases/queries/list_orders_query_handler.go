package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
)

// ListOrdersQueryHandler retrieves order summaries from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			created_at
		FROM orders
		WHERE is_deleted = FALSE
	`
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		sql += " AND status = ?"
		args = append(args, status.String())
	}
	if customerID := query.CustomerID(); customerID != nil {
		sql += " AND customer_id = ?"
		args = append(args, customerID.Bytes())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp       ListOrdersQueryResponse
			id         uuid.UUID
			customerID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&customerID,
			&resp.Status,
			&resp.TotalAmount,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
