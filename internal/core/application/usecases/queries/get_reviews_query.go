package queries

import (
	"errors"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery retrieves all service reviews with the reviewer's name
// joined on, newest first.
type GetReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReviewsQuery creates a query for the public review list.
// This is a parameterless query.
func NewGetReviewsQuery() GetReviewsQuery {
	return GetReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

// ReviewView is the read model for a single review row.
type ReviewView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}
