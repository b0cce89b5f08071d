package queries

import (
	"errors"
	"strings"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

var (
	ErrAuthenticateAccountQueryIsNotConstructed = errors.New(
		"AuthenticateAccountQuery must be created via NewAuthenticateAccountQuery constructor",
	)
	ErrCredentialsAreRequired = errors.New("email and password are required")
)

// AuthenticateAccountQuery verifies login credentials. On success the
// handler returns the account's identity and role for token issuance.
type AuthenticateAccountQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateAccountQuery creates a login query. The email is
// normalized to lowercase to match how registration stores it.
func NewAuthenticateAccountQuery(email, password string) (AuthenticateAccountQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthenticateAccountQuery{}, ErrCredentialsAreRequired
	}

	return AuthenticateAccountQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateAccountQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateAccountQueryIsNotConstructed)
}

// Email returns the normalized login email.
func (q AuthenticateAccountQuery) Email() string {
	return q.email
}

// Password returns the clear-text password for verification.
func (q AuthenticateAccountQuery) Password() string {
	return q.password
}

// AuthenticateAccountQueryResponse carries the authenticated identity.
type AuthenticateAccountQueryResponse struct {
	AccountID kernel.UUID
	Name      string
	Email     string
	Role      account.Role
}
