package commands

import (
	"errors"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order through its
// lifecycle. It carries the acting user so the handler can authorize the
// transition: confirming and delivering are admin-only, cancelling is open
// to the admin and to the order's owner.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	actorID   kernel.UUID
	actorRole account.Role

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	actorRole account.Role,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// ActorID returns the identifier of the user requesting the transition.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the user requesting the transition.
func (c UpdateOrderStatusCommand) ActorRole() account.Role {
	return c.actorRole
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(actorID kernel.UUID, actorRole account.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
