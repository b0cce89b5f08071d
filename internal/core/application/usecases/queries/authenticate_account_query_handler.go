package queries

import (
	"context"
	"database/sql"
	"errors"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordVerifier checks a clear-text password against a stored hash.
// Implemented by the auth package with bcrypt.
type PasswordVerifier interface {
	Verify(hash, password string) error
}

// AuthenticateAccountQueryHandler verifies login credentials against the
// accounts table. A wrong password and an unknown email both surface as
// NotAuthorizedError so login responses never reveal which one was wrong.
type AuthenticateAccountQueryHandler struct {
	db       *gorm.DB
	verifier PasswordVerifier
}

// NewAuthenticateAccountQueryHandler creates a handler for login queries.
func NewAuthenticateAccountQueryHandler(db *gorm.DB, verifier PasswordVerifier) AuthenticateAccountQueryHandler {
	return AuthenticateAccountQueryHandler{
		db:       db,
		verifier: verifier,
	}
}

// Handle verifies the credentials and returns the account identity.
func (h AuthenticateAccountQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateAccountQuery,
) (AuthenticateAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	var (
		rawID        uuid.UUID
		name         string
		email        string
		passwordHash string
		role         int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, role
		FROM accounts
		WHERE email = ?
	`, query.Email()).Row()

	if err := row.Scan(&rawID, &name, &email, &passwordHash, &role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return AuthenticateAccountQueryResponse{}, errs.NewNotAuthorizedError("login")
		}
		return AuthenticateAccountQueryResponse{}, errs.NewStoreUnavailableError("query account", err)
	}

	if err := h.verifier.Verify(passwordHash, query.Password()); err != nil {
		return AuthenticateAccountQueryResponse{}, errs.NewNotAuthorizedErrorWithCause("login", err)
	}

	accountID, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return AuthenticateAccountQueryResponse{}, err
	}

	return AuthenticateAccountQueryResponse{
		AccountID: accountID,
		Name:      name,
		Email:     email,
		Role:      account.Role(role),
	}, nil
}
