// Package kafka publishes order lifecycle events to a Kafka topic. Events are
// emitted after the owning transaction commits, so a consumer never observes a
// status the database does not hold.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
)

const eventOrderStatusChanged = "OrderStatusChanged"

// statusChangedEvent is the wire format for order status notifications.
// Messages are keyed by order ID so all events for one order stay ordered
// within a partition.
type statusChangedEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OccurredAt     time.Time `json:"occurred_at"`
	OrderID        string    `json:"order_id"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	TailorID       string    `json:"tailor_id,omitempty"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
}

// StatusNotifier publishes order status changes using a kafka-go writer.
type StatusNotifier struct {
	writer *kafka.Writer
}

// NewStatusNotifier creates a notifier publishing to the given brokers and
// topic. Acks from all replicas are required before a write returns.
func NewStatusNotifier(brokers []string, topic string) *StatusNotifier {
	return &StatusNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// NotifyOrderStatusChanged publishes a status change event for the order.
func (n *StatusNotifier) NotifyOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	event := statusChangedEvent{
		EventID:        kernel.NewUUID().String(),
		EventType:      eventOrderStatusChanged,
		OccurredAt:     time.Now().UTC(),
		OrderID:        aggregate.ID().String(),
		CustomerID:     aggregate.CustomerID().String(),
		Status:         aggregate.Status().String(),
		TrackingNumber: aggregate.TrackingNumber(),
	}
	if aggregate.Tailor() != nil {
		event.TailorID = aggregate.Tailor().String()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  event.OccurredAt,
	})
}

// Close releases the underlying writer and its connections.
func (n *StatusNotifier) Close() error {
	return n.writer.Close()
}
