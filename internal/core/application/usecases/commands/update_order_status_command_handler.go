package commands

import (
	"context"
	"fmt"
	"time"

	"milkround/internal/core/domain/model/order"
	"milkround/internal/core/ports"
	"milkround/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions.
//
// Authorization rules:
//   - Confirm and Deliver require the admin role.
//   - Cancel is allowed for the admin and for the order's own customer.
//
// The state machine itself rejects invalid transitions regardless of role.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = authorizeTransition(cmd, aggregate); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a failed publish never undoes a committed transition.
	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return nil
}

func authorizeTransition(cmd UpdateOrderStatusCommand, aggregate *order.Order) error {
	if cmd.ActorRole().IsAdmin() {
		return nil
	}

	if cmd.Target() == order.Cancelled && aggregate.CustomerID().IsEqual(cmd.ActorID()) {
		return nil
	}

	return errs.NewNotAuthorizedError(
		fmt.Sprintf("transition order %s to %s", aggregate.ID(), cmd.Target()))
}
