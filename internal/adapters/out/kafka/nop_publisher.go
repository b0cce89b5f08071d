package kafka

import (
	"context"

	"milkround/internal/core/domain/model/order"
)

// NopOrderEventPublisher discards events. Used when no broker is
// configured, keeping the command handlers free of nil checks.
type NopOrderEventPublisher struct{}

// NewNopOrderEventPublisher creates a publisher that does nothing.
func NewNopOrderEventPublisher() *NopOrderEventPublisher {
	return &NopOrderEventPublisher{}
}

// PublishOrderChanged drops the event.
func (p *NopOrderEventPublisher) PublishOrderChanged(_ context.Context, _ *order.Order) error {
	return nil
}
