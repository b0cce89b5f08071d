package commands

import (
	"context"
	"time"

	"milkround/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles new account registration.
// Hashes the password, builds the aggregate with the customer role, and
// persists it inside a transaction. Email uniqueness is enforced by the
// repository, which reports a duplicate as an ObjectAlreadyExistsError.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Hall(),
		cmd.Room(),
		passwordHash,
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

	if err = uow.AccountRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
