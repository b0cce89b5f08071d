package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account represents a registered user of the milk delivery service.
// It carries the profile details shown alongside orders in the admin views
// (name, phone, hall, room) and the credentials used for login.
//
// The password is never stored in clear text. NewAccount receives an already
// hashed password; hashing lives outside the domain so the aggregate stays
// free of crypto dependencies.
type Account struct { //nolint:recvcheck //using for validation
	id           kernel.UUID
	name         string
	email        string
	phone        string
	hall         string
	room         string
	passwordHash string
	role         Role
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount registers a new account with the RoleCustomer role.
//
// Validation rules:
//   - id must be a constructed UUID
//   - name, email, phone, hall, room and passwordHash must be non-blank
//   - email must contain an @ and is normalized to lowercase
func NewAccount(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	hall string,
	room string,
	passwordHash string,
	now time.Time,
) (*Account, error) {
	a := &Account{
		role:      RoleCustomer,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setPhone(phone),
		a.setHall(hall),
		a.setRoom(room),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persisted state, including its
// role.
func RestoreAccount(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	hall string,
	room string,
	passwordHash string,
	role Role,
	createdAt time.Time,
) (*Account, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &Account{
		id:           id,
		name:         name,
		email:        strings.ToLower(strings.TrimSpace(email)),
		phone:        phone,
		hall:         hall,
		room:         room,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Account was constructed via NewAccount or
// RestoreAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}

	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the account holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the normalized login email.
func (a *Account) Email() string {
	return a.email
}

// Phone returns the contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Hall returns the residence hall used for delivery.
func (a *Account) Hall() string {
	return a.hall
}

// Room returns the room number within the hall.
func (a *Account) Room() string {
	return a.room
}

// PasswordHash returns the stored credential hash for verification.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// CreatedAt returns the registration timestamp.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// IsAdmin reports whether the account carries administrative privileges.
func (a *Account) IsAdmin() bool {
	return a.role.IsAdmin()
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = strings.TrimSpace(name)
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid",
			fmt.Errorf("%q does not look like an email address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = strings.TrimSpace(phone)
	return nil
}

func (a *Account) setHall(hall string) error {
	if strings.TrimSpace(hall) == "" {
		return errs.NewValueIsRequiredError("hall")
	}
	a.hall = strings.TrimSpace(hall)
	return nil
}

func (a *Account) setRoom(room string) error {
	if strings.TrimSpace(room) == "" {
		return errs.NewValueIsRequiredError("room")
	}
	a.room = strings.TrimSpace(room)
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}
