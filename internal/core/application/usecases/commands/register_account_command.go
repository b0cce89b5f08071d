package commands

import (
	"errors"
	"strings"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/guard"
)

const minPasswordLength = 6

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPhoneIsRequired    = errors.New("phone is required")
	ErrHallIsRequired     = errors.New("hall is required")
	ErrRoomIsRequired     = errors.New("room is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

// RegisterAccountCommand represents a request to register a new customer
// account with its delivery profile and login credentials.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     string
	phone     string
	hall      string
	room      string
	password  string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// The password arrives in clear text here and is hashed by the handler;
// it is never persisted as given.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name string,
	email string,
	phone string,
	hall string,
	room string,
	password string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setHall(hall),
		cmd.setRoom(room),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier assigned to the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the account holder's display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Hall returns the residence hall.
func (c RegisterAccountCommand) Hall() string {
	return c.hall
}

// Room returns the room number.
func (c RegisterAccountCommand) Room() string {
	return c.room
}

// Password returns the clear-text password for hashing.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterAccountCommand) setHall(hall string) error {
	if strings.TrimSpace(hall) == "" {
		return ErrHallIsRequired
	}

	c.hall = hall
	return nil
}

func (c *RegisterAccountCommand) setRoom(room string) error {
	if strings.TrimSpace(room) == "" {
		return ErrRoomIsRequired
	}

	c.room = room
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}
