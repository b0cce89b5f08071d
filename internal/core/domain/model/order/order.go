package order

import (
	"errors"
	"fmt"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a milk delivery order. It is the aggregate root managing
// the order lifecycle from placement through confirmation to delivery or
// cancellation.
//
// Order maintains these invariants:
//   - Must have valid order and customer identifiers
//   - Quantity lies within [1, tariff max] at creation time
//   - Total price is frozen at creation from the tariff then in effect
//   - Delivery date is never earlier than the placement date
//   - Status transitions follow the state machine defined on Status
//
// Private fields keep the aggregate encapsulated; all mutation goes through
// validated transition methods.
type Order struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	customerID   kernel.UUID
	quantity     int
	totalPrice   int
	deliveryDate kernel.Date
	status       Status
	notes        string
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status, computing the total price
// from the supplied tariff. This is the only way to place a valid order.
//
// Validation rules:
//   - id and customerID must be constructed UUIDs
//   - quantity must lie within [1, tariff.MaxQuantity()]
//   - deliveryDate must not fall before the calendar day of now
//
// The time-of-day part of now is ignored for the date comparison: an order
// placed at 23:59 for the same day is valid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	quantity int,
	deliveryDate kernel.Date,
	notes string,
	tariff Tariff,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setQuantity(quantity, tariff),
		o.setDeliveryDate(deliveryDate, now),
	); err != nil {
		return nil, err
	}

	o.totalPrice = quantity * tariff.UnitPrice()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Identifier,
// status, and date validity are re-checked; creation-time business rules
// (quantity cap, no-backdating) are not, because historical orders may
// predate the current tariff and their delivery dates have passed.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	quantity int,
	totalPrice int,
	deliveryDate kernel.Date,
	status Status,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		deliveryDate.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return &Order{
		id:           id,
		customerID:   customerID,
		quantity:     quantity,
		totalPrice:   totalPrice,
		deliveryDate: deliveryDate,
		status:       status,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order was constructed via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Quantity returns the number of bottles ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the price frozen at placement time.
func (o *Order) TotalPrice() int {
	return o.totalPrice
}

// DeliveryDate returns the calendar day the order is to be delivered.
func (o *Order) DeliveryDate() kernel.Date {
	return o.deliveryDate
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional free-text delivery notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsActive reports whether the order still counts against the one-order-per
// delivery-date rule. Cancelled orders free their date for a new order.
func (o *Order) IsActive() bool {
	return o.status != Cancelled
}

// Confirm marks the order as accepted for delivery.
// Only Pending orders can be confirmed.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Deliver marks the order as delivered to the customer.
// Only Confirmed orders can be delivered; Delivered is terminal.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel withdraws the order before delivery.
// Pending and Confirmed orders can be cancelled; Cancelled is terminal.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// TransitionTo moves the order to target if the state machine allows it,
// refreshing the update timestamp. On failure the order is unchanged.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setQuantity(quantity int, tariff Tariff) error {
	if err := tariff.Validate(); err != nil {
		return err
	}
	if quantity < 1 || quantity > tariff.MaxQuantity() {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, tariff.MaxQuantity())
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate kernel.Date, now time.Time) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}
	if deliveryDate.Before(kernel.DateOf(now)) {
		return errs.NewValueIsInvalidErrorWithCause("delivery date is invalid",
			fmt.Errorf("%s is earlier than today", deliveryDate))
	}
	o.deliveryDate = deliveryDate
	return nil
}
