// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the event
// publisher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByCustomerAndDate retrieves the customer's non-cancelled order
	// for the given delivery date. Returns nil without error when no such
	// order exists. Used to enforce the one-active-order-per-date rule.
	GetActiveByCustomerAndDate(ctx context.Context, customerID kernel.UUID, date kernel.Date) (*order.Order, error)

	// GetDeliveredByCustomer retrieves all delivered orders of a customer,
	// used as input for loyalty statistics.
	GetDeliveredByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetStalePending retrieves pending orders whose delivery date falls
	// before the given day. Used by the stale order sweep job.
	GetStalePending(ctx context.Context, before kernel.Date) ([]*order.Order, error)
}
