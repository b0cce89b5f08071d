package commands

import (
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// PlaceOrderCommand represents a customer's request for a milk delivery on a
// specific date. Quantity limits and date rules are enforced by the Order
// aggregate; the command only checks structural validity.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	quantity     int
	deliveryDate kernel.Date
	notes        string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	quantity int,
	deliveryDate kernel.Date,
	notes string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setQuantity(quantity),
		cmd.setDeliveryDate(deliveryDate),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Quantity returns the requested number of bottles.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryDate returns the requested delivery day.
func (c PlaceOrderCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}

// Notes returns the optional delivery notes.
func (c PlaceOrderCommand) Notes() string {
	return c.notes
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setDeliveryDate(deliveryDate kernel.Date) error {
	if err := deliveryDate.Validate(); err != nil {
		return err
	}

	c.deliveryDate = deliveryDate
	return nil
}
