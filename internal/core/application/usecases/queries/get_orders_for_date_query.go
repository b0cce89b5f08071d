package queries

import (
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var ErrGetOrdersForDateQueryIsNotConstructed = errors.New(
	"GetOrdersForDateQuery must be created via NewGetOrdersForDateQuery constructor",
)

// GetOrdersForDateQuery retrieves every order due for delivery on a given
// day. Backs the admin's daily delivery run view.
type GetOrdersForDateQuery struct {
	date kernel.Date

	guard guard.ConstructorGuard
}

// NewGetOrdersForDateQuery creates a query for the given delivery day.
func NewGetOrdersForDateQuery(date kernel.Date) (GetOrdersForDateQuery, error) {
	if err := date.Validate(); err != nil {
		return GetOrdersForDateQuery{}, err
	}

	return GetOrdersForDateQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForDateQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForDateQueryIsNotConstructed)
}

// Date returns the requested delivery day.
func (q GetOrdersForDateQuery) Date() kernel.Date {
	return q.date
}
