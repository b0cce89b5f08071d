package commands

import (
	"context"
	"time"

	"milkround/internal/core/ports"
)

// ExpireStaleOrdersCommandHandler cancels pending orders whose delivery date
// passed without an admin confirming them. Keeps the pending queue from
// accumulating orders that can no longer be fulfilled.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewExpireStaleOrdersCommandHandler creates a handler for the stale order
// sweep.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels every stale pending order in one transaction and returns
// how many were expired.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	stale, err := orderRepo.GetStalePending(ctx, cmd.Today())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, aggregate := range stale {
		if err = aggregate.Cancel(now); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		// Best effort: a failed publish never undoes a committed sweep.
		_ = h.publisher.PublishOrderChanged(ctx, aggregate)
	}

	return len(stale), nil
}
