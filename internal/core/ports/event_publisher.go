package ports

import (
	"context"

	"milkround/internal/core/domain/model/order"
)

// OrderEventPublisher emits order lifecycle events to the message broker.
// Publishing is best effort relative to the business transaction: a failed
// publish is logged, never rolled back into the command.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event describing the order's current
	// state after placement or a status transition.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
