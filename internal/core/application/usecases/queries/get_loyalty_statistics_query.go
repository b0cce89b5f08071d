package queries

import (
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var ErrGetLoyaltyStatisticsQueryIsNotConstructed = errors.New(
	"GetLoyaltyStatisticsQuery must be created via NewGetLoyaltyStatisticsQuery constructor",
)

// GetLoyaltyStatisticsQuery retrieves a customer's loyalty figures: total
// delivered bottles and the current consecutive-day delivery streak.
type GetLoyaltyStatisticsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoyaltyStatisticsQuery creates a query for a customer's loyalty
// statistics.
func NewGetLoyaltyStatisticsQuery(customerID kernel.UUID) (GetLoyaltyStatisticsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetLoyaltyStatisticsQuery{}, err
	}

	return GetLoyaltyStatisticsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoyaltyStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetLoyaltyStatisticsQueryIsNotConstructed)
}

// CustomerID returns the customer whose statistics are requested.
func (q GetLoyaltyStatisticsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetLoyaltyStatisticsQueryResponse carries the computed loyalty figures.
type GetLoyaltyStatisticsQueryResponse struct {
	BottleCount   int
	CurrentStreak int
}
