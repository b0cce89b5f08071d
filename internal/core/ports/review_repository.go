package ports

import (
	"context"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review. Fails with an ObjectAlreadyExistsError if
	// the customer already has a review.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForCustomer reports whether the customer already left a review.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
