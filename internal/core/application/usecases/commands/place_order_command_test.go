package commands_test

import (
	"testing"
	"time"

	"milkround/internal/core/application/usecases/commands"
	"milkround/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tomorrow() kernel.Date {
	return kernel.DateOf(time.Now().UTC()).AddDays(1)
}

func TestNewPlaceOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, 2, tomorrow(), "gate 3")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Equal(t, 2, cmd.Quantity())
		assert.Equal(t, "gate 3", cmd.Notes())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(invalidID, customerID, 2, tomorrow(), "")

		require.Error(t, err)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(orderID, invalidID, 2, tomorrow(), "")

		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID, customerID, 0, tomorrow(), "")

		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should fail with unconstructed date", func(t *testing.T) {
		var invalidDate kernel.Date

		_, err := commands.NewPlaceOrderCommand(orderID, customerID, 1, invalidDate, "")

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
