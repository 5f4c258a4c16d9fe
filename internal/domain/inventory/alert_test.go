//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"commerce-ledger/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockAlert(t *testing.T) {
	productID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		alert, err := inventory.NewStockAlert(productID, 10, true, fixedNow)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, alert.ID())
		assert.Equal(t, productID, alert.ProductID())
		assert.Equal(t, 10, alert.Threshold())
		assert.True(t, alert.IsActive())
		assert.Equal(t, fixedNow, alert.CreatedAt())
		assert.Equal(t, alert.CreatedAt(), alert.UpdatedAt())
	})

	t.Run("threshold must be positive", func(t *testing.T) {
		for _, th := range []int{0, -1} {
			alert, err := inventory.NewStockAlert(productID, th, true, fixedNow)
			assert.Nil(t, alert)
			assert.ErrorIs(t, err, inventory.ErrInvalidThreshold)
		}
	})

	t.Run("evaluate", func(t *testing.T) {
		alert, err := inventory.NewStockAlert(productID, 5, true, fixedNow)
		require.NoError(t, err)

		at := fixedNow.Add(time.Hour)
		ev, ok := alert.Evaluate(5, at)
		require.True(t, ok, "stock equal to threshold triggers")
		assert.Equal(t, inventory.LowStockEvent{
			ProductID:    productID,
			CurrentStock: 5,
			Threshold:    5,
			OccurredAt:   at,
		}, ev)

		_, ok = alert.Evaluate(0, at)
		assert.True(t, ok)

		_, ok = alert.Evaluate(6, at)
		assert.False(t, ok)
	})

	t.Run("inactive alert never triggers", func(t *testing.T) {
		alert, err := inventory.NewStockAlert(productID, 5, false, fixedNow)
		require.NoError(t, err)

		_, ok := alert.Evaluate(0, fixedNow)
		assert.False(t, ok)
	})

	t.Run("nil alert never triggers", func(t *testing.T) {
		var alert *inventory.StockAlert
		_, ok := alert.Evaluate(0, fixedNow)
		assert.False(t, ok)
	})

	t.Run("change settings", func(t *testing.T) {
		alert, err := inventory.NewStockAlert(productID, 5, true, fixedNow)
		require.NoError(t, err)

		later := fixedNow.Add(24 * time.Hour)
		require.NoError(t, alert.ChangeSettings(20, false, later))
		assert.Equal(t, 20, alert.Threshold())
		assert.False(t, alert.IsActive())
		assert.Equal(t, later, alert.UpdatedAt())
		assert.Equal(t, fixedNow, alert.CreatedAt())

		err = alert.ChangeSettings(0, true, later)
		assert.ErrorIs(t, err, inventory.ErrInvalidThreshold)
		assert.Equal(t, 20, alert.Threshold(), "failed change keeps previous settings")
		assert.False(t, alert.IsActive())
	})
}
