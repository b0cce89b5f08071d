// Package kafka publishes order lifecycle events to a Kafka topic so
// downstream consumers (notifications, analytics) can react to status
// changes without polling the database.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"milkround/internal/core/domain/model/order"
	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/retry"

	"github.com/segmentio/kafka-go"
)

// messageWriter abstracts kafka.Writer for tests.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// orderChangedEvent is the wire format for an order lifecycle change.
type orderChangedEvent struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	Status       string    `json:"status"`
	Quantity     int       `json:"quantity"`
	TotalPrice   int       `json:"total_price"`
	DeliveryDate string    `json:"delivery_date"`
	ChangedAt    time.Time `json:"changed_at"`
}

// OrderEventPublisher writes order change events to Kafka. Writes are
// retried on broker unavailability within a short window; the caller
// decides whether a failed publish matters.
type OrderEventPublisher struct {
	writer messageWriter
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// PublishOrderChanged sends the order's current state to the topic. The
// order ID is the message key, so all events for one order land on the
// same partition in order.
func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := orderChangedEvent{
		OrderID:      aggregate.ID().String(),
		CustomerID:   aggregate.CustomerID().String(),
		Status:       aggregate.Status().String(),
		Quantity:     aggregate.Quantity(),
		TotalPrice:   aggregate.TotalPrice(),
		DeliveryDate: aggregate.DeliveryDate().String(),
		ChangedAt:    aggregate.UpdatedAt(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
	}

	return retry.Do(ctx, func() error {
		if err := p.writer.WriteMessages(ctx, message); err != nil {
			return errs.NewStoreUnavailableError("publish order changed", err)
		}
		return nil
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
