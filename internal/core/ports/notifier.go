package ports

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
)

// OrderNotifier is the post-commit notification trigger.
// It is invoked fire-and-forget after a transition commits: failures are
// logged by the caller, never retried, and never reopen the transaction.
type OrderNotifier interface {
	NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
}
