package account_test

import (
	"testing"
	"time"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

func TestNewAccount(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create account with customer role", func(t *testing.T) {
		a, err := account.NewAccount(validID, "Rahim Uddin", "rahim@example.com",
			"01712345678", "Shahid Smrity Hall", "204", "$2a$10$hash", testNow)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.Equal(t, "Rahim Uddin", a.Name())
		assert.Equal(t, "rahim@example.com", a.Email())
		assert.Equal(t, "01712345678", a.Phone())
		assert.Equal(t, "Shahid Smrity Hall", a.Hall())
		assert.Equal(t, "204", a.Room())
		assert.Equal(t, "$2a$10$hash", a.PasswordHash())
		assert.Equal(t, account.RoleCustomer, a.Role())
		assert.False(t, a.IsAdmin())
		assert.Equal(t, testNow, a.CreatedAt())
	})

	t.Run("should normalize email to lowercase", func(t *testing.T) {
		a, err := account.NewAccount(validID, "Rahim", "  Rahim@Example.COM ",
			"01712345678", "Hall", "204", "hash", testNow)

		require.NoError(t, err)
		assert.Equal(t, "rahim@example.com", a.Email())
	})

	t.Run("should trim whitespace from profile fields", func(t *testing.T) {
		a, err := account.NewAccount(validID, "  Rahim  ", "r@example.com",
			" 01712345678 ", " Hall ", " 204 ", "hash", testNow)

		require.NoError(t, err)
		assert.Equal(t, "Rahim", a.Name())
		assert.Equal(t, "01712345678", a.Phone())
		assert.Equal(t, "Hall", a.Hall())
		assert.Equal(t, "204", a.Room())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := account.NewAccount(invalidID, "Rahim", "r@example.com",
			"01712345678", "Hall", "204", "hash", testNow)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with blank required fields", func(t *testing.T) {
		testCases := []struct {
			name                                          string
			accName, email, phone, hall, room, hash       string
			missing                                       string
		}{
			{"blank name", "  ", "r@example.com", "017", "Hall", "204", "hash", "name"},
			{"blank email", "Rahim", "", "017", "Hall", "204", "hash", "email"},
			{"blank phone", "Rahim", "r@example.com", " ", "Hall", "204", "hash", "phone"},
			{"blank hall", "Rahim", "r@example.com", "017", "", "204", "hash", "hall"},
			{"blank room", "Rahim", "r@example.com", "017", "Hall", "", "hash", "room"},
			{"blank password hash", "Rahim", "r@example.com", "017", "Hall", "204", "", "passwordHash"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				a, err := account.NewAccount(validID, tc.accName, tc.email,
					tc.phone, tc.hall, tc.room, tc.hash, testNow)

				require.Error(t, err)
				assert.Nil(t, a)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Contains(t, err.Error(), tc.missing)
			})
		}
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		a, err := account.NewAccount(validID, "Rahim", "not-an-email",
			"017", "Hall", "204", "hash", testNow)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "email is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := account.NewAccount(invalidID, "", "bad", "", "", "", "", testNow)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "email is invalid")
	})
}

func TestRestoreAccount(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should restore account with admin role", func(t *testing.T) {
		a, err := account.RestoreAccount(id, "Admin", "admin@example.com",
			"017", "Hall", "1", "hash", account.RoleAdmin, testNow)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, account.RoleAdmin, a.Role())
		assert.True(t, a.IsAdmin())
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		a, err := account.RestoreAccount(id, "Rahim", "r@example.com",
			"017", "Hall", "204", "hash", account.RoleUnknown, testNow)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "role is invalid")
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := account.RestoreAccount(invalidID, "Rahim", "r@example.com",
			"017", "Hall", "204", "hash", account.RoleCustomer, testNow)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestAccount_Validate(t *testing.T) {
	t.Run("should fail validation for nil account", func(t *testing.T) {
		var a *account.Account

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAccountIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value account", func(t *testing.T) {
		var a account.Account

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrAccountIsNotConstructed, err)
	})
}

func TestAccount_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	a1, _ := account.NewAccount(id1, "One", "one@example.com", "1", "H", "1", "hash", testNow)
	a2, _ := account.NewAccount(id1, "Two", "two@example.com", "2", "H", "2", "hash", testNow)
	a3, _ := account.NewAccount(id2, "Three", "three@example.com", "3", "H", "3", "hash", testNow)

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
	assert.False(t, a1.IsEqual(nil))
}
