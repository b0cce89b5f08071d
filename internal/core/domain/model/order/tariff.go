package order

import (
	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/guard"
)

const (
	// DefaultUnitPrice is the price of a single 250ml bottle in Taka.
	DefaultUnitPrice = 30

	// DefaultMaxQuantity is the largest number of bottles in one order.
	DefaultMaxQuantity = 10
)

// ErrTariffIsNotConstructed is returned when validating a zero-value Tariff.
var ErrTariffIsNotConstructed = errs.NewValueIsRequiredError(
	"tariff must be created via NewTariff constructor")

// Tariff is the pricing policy in effect when an order is placed.
// An order's total price is frozen from the tariff at creation time; later
// tariff changes never alter existing orders.
type Tariff struct { //nolint:recvcheck //using for validation
	unitPrice   int
	maxQuantity int

	guard guard.ConstructorGuard
}

// NewTariff creates a Tariff with the given per-bottle price and per-order
// quantity cap. Both must be positive.
func NewTariff(unitPrice, maxQuantity int) (Tariff, error) {
	if unitPrice <= 0 {
		return Tariff{}, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 1, int(^uint(0)>>1))
	}
	if maxQuantity <= 0 {
		return Tariff{}, errs.NewValueIsOutOfRangeError("maxQuantity", maxQuantity, 1, int(^uint(0)>>1))
	}

	return Tariff{
		unitPrice:   unitPrice,
		maxQuantity: maxQuantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// DefaultTariff returns the tariff with the default unit price and cap.
func DefaultTariff() Tariff {
	t, _ := NewTariff(DefaultUnitPrice, DefaultMaxQuantity)
	return t
}

// Validate checks that the Tariff was created through its constructor.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// UnitPrice returns the price of one bottle.
func (t Tariff) UnitPrice() int {
	return t.unitPrice
}

// MaxQuantity returns the per-order bottle cap.
func (t Tariff) MaxQuantity() int {
	return t.maxQuantity
}
