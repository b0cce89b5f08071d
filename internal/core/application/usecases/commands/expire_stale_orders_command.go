package commands

import (
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand requests cancellation of pending orders whose
// delivery date has passed without confirmation. Issued by the nightly
// sweep job.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	today kernel.Date

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire orders still
// pending before the given day.
func NewExpireStaleOrdersCommand(today kernel.Date) (ExpireStaleOrdersCommand, error) {
	if err := today.Validate(); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return ExpireStaleOrdersCommand{
		today: today,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Today returns the day the sweep runs; orders pending for earlier days are
// expired.
func (c ExpireStaleOrdersCommand) Today() kernel.Date {
	return c.today
}
