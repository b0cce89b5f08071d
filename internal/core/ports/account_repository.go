package ports

import (
	"context"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. Fails with an ObjectAlreadyExistsError if
	// the email is already registered.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its normalized login email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}
