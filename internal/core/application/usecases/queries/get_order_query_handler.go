package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// GetOrderQueryHandler reads one order directly from the database.
// Soft-deleted orders are reported as not found, same as missing rows.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when the order does not exist or was
// soft-deleted.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp          GetOrderQueryResponse
		id            uuid.UUID
		customerID    uuid.UUID
		tailorID      uuid.NullUUID
		historyRaw    []byte
		trackingValue sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			tailor_id,
			shipping_address,
			tracking_number,
			status_history
		FROM orders
		WHERE id = ? AND is_deleted = FALSE
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&resp.Status,
		&resp.TotalAmount,
		&tailorID,
		&resp.ShippingAddress,
		&trackingValue,
		&historyRaw,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if tailorID.Valid {
		assigned, idErr := kernel.UUIDFromBytes(tailorID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.TailorID = &assigned
	}
	if trackingValue.Valid {
		resp.TrackingNumber = trackingValue.String
	}

	if len(historyRaw) > 0 {
		if err = json.Unmarshal(historyRaw, &resp.StatusHistory); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_name,
			quantity,
			unit_price,
			total_price,
			customizations
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item              OrderItemResponse
			customizationsRaw []byte
		)

		if err = rows.Scan(
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&customizationsRaw,
		); err != nil {
			return nil, err
		}

		if len(customizationsRaw) > 0 {
			if err = json.Unmarshal(customizationsRaw, &item.Customizations); err != nil {
				return nil, err
			}
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
