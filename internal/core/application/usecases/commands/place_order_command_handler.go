package commands

import (
	"context"
	"fmt"
	"time"

	"milkround/internal/core/domain/model/order"
	"milkround/internal/core/ports"
	"milkround/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Enforces the one-active-order-per-date rule, freezes the price from the
// current tariff, and persists the new order in Pending status.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	tariff     order.Tariff
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	tariff order.Tariff,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
//
// The duplicate check and the insert run in one transaction so two
// simultaneous requests for the same date cannot both succeed; the unique
// index on (customer, delivery date) backstops the check.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Quantity(),
		cmd.DeliveryDate(),
		cmd.Notes(),
		h.tariff,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.GetActiveByCustomerAndDate(ctx, cmd.CustomerID(), cmd.DeliveryDate())
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewObjectAlreadyExistsError(
			fmt.Sprintf("order for %s", cmd.DeliveryDate()), existing.ID().String())
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: a failed publish never undoes a committed order.
	_ = h.publisher.PublishOrderChanged(ctx, aggregate)

	return nil
}
