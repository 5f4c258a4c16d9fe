//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newRecord(t *testing.T, qty int) inventory.StockRecord {
	t.Helper()
	rec, err := inventory.NewStockRecord(uuid.New(), qty, 5)
	require.NoError(t, err)
	return rec
}

func TestLedgerApply(t *testing.T) {
	ledger := inventory.NewLedger(clock.NewMockClock(fixedNow))

	cases := []struct {
		name     string
		start    int
		quantity int
		txType   inventory.TransactionType
		want     int
		errIs    error
	}{
		{name: "purchase adds", start: 10, quantity: 5, txType: inventory.TypePurchase, want: 15},
		{name: "restock adds", start: 0, quantity: 7, txType: inventory.TypeRestock, want: 7},
		{name: "return adds", start: 3, quantity: 2, txType: inventory.TypeReturn, want: 5},
		{name: "sale subtracts", start: 10, quantity: 4, txType: inventory.TypeSale, want: 6},
		{name: "damaged subtracts", start: 10, quantity: 10, txType: inventory.TypeDamaged, want: 0},
		{name: "adjustment sets absolute value", start: 10, quantity: 3, txType: inventory.TypeAdjustment, want: 3},
		{name: "adjustment can raise stock", start: 1, quantity: 40, txType: inventory.TypeAdjustment, want: 40},
		{name: "sale beyond stock", start: 10, quantity: 15, txType: inventory.TypeSale, errIs: inventory.ErrInsufficientStock},
		{name: "damaged beyond stock", start: 0, quantity: 1, txType: inventory.TypeDamaged, errIs: inventory.ErrInsufficientStock},
		{name: "zero quantity", start: 10, quantity: 0, txType: inventory.TypePurchase, errIs: inventory.ErrInvalidQuantity},
		{name: "negative quantity", start: 10, quantity: -3, txType: inventory.TypeSale, errIs: inventory.ErrInvalidQuantity},
		{name: "unknown type", start: 10, quantity: 1, txType: inventory.TransactionType("TRANSFER"), errIs: inventory.ErrInvalidTransactionType},
		{name: "adjustment to the storable maximum", start: 50, quantity: inventory.MaxStockQuantity, txType: inventory.TypeAdjustment, want: inventory.MaxStockQuantity},
		{name: "adjustment beyond the storable maximum", start: 50, quantity: 4294967301, txType: inventory.TypeAdjustment, errIs: inventory.ErrStockOverflow},
		{name: "purchase crossing the storable maximum", start: inventory.MaxStockQuantity - 1, quantity: 2, txType: inventory.TypePurchase, errIs: inventory.ErrStockOverflow},
		{name: "sale larger than the storable maximum", start: 10, quantity: inventory.MaxStockQuantity + 1, txType: inventory.TypeSale, errIs: inventory.ErrStockOverflow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := newRecord(t, c.start)

			next, tx, err := ledger.Apply(rec, c.quantity, c.txType, ptr.To("ref-1"))

			assert.Equal(t, c.start, rec.QuantityOnHand(), "input record must not change")
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Equal(t, inventory.StockRecord{}, next)
				assert.Equal(t, inventory.Transaction{}, tx)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, next.QuantityOnHand())
			assert.Equal(t, rec.ProductID(), next.ProductID())
			assert.Equal(t, rec.LowStockThreshold(), next.LowStockThreshold())
			assert.Equal(t, fixedNow, next.UpdatedAt())

			assert.NotEqual(t, uuid.Nil, tx.ID())
			assert.Equal(t, rec.ProductID(), tx.ProductID())
			assert.Equal(t, c.quantity, tx.Quantity())
			assert.Equal(t, c.txType, tx.Type())
			assert.Equal(t, "ref-1", *tx.Reference())
			assert.Equal(t, c.start, tx.StockBefore())
			assert.Equal(t, c.want, tx.StockAfter())
			assert.Equal(t, fixedNow, tx.CreatedAt())
		})
	}
}

func TestLedgerApply_InsufficientStockDetails(t *testing.T) {
	ledger := inventory.NewLedger(clock.NewMockClock(fixedNow))
	rec := newRecord(t, 10)

	_, _, err := ledger.Apply(rec, 15, inventory.TypeSale, nil)
	require.Error(t, err)

	var ise *inventory.InsufficientStockError
	require.True(t, errs.As(err, &ise))
	assert.Equal(t, rec.ProductID(), ise.ProductID)
	assert.Equal(t, 10, ise.Available)
	assert.Equal(t, 15, ise.Requested)
	assert.Equal(t, inventory.TypeSale, ise.Type)

	t.Run("在庫不足はconflictとして分類される", func(t *testing.T) {
		wrapped := errs.Wrap(err, "record transaction")
		assert.True(t, errs.Is(wrapped, inventory.ErrInsufficientStock))
		assert.True(t, errs.Is(wrapped, errs.ErrConflict))
		assert.False(t, errs.Is(wrapped, errs.ErrValidation))
	})
}

func TestLedgerApply_NilReference(t *testing.T) {
	ledger := inventory.NewLedger(clock.NewMockClock(fixedNow))

	_, tx, err := ledger.Apply(newRecord(t, 1), 1, inventory.TypePurchase, nil)
	require.NoError(t, err)
	assert.Nil(t, tx.Reference())
}

func TestLedgerApply_SequentialMovements(t *testing.T) {
	mc := clock.NewMockClock(fixedNow)
	ledger := inventory.NewLedger(mc)
	rec := newRecord(t, 10)

	rec, _, err := ledger.Apply(rec, 5, inventory.TypePurchase, nil)
	require.NoError(t, err)
	mc.Add(time.Minute)
	rec, _, err = ledger.Apply(rec, 12, inventory.TypeSale, nil)
	require.NoError(t, err)
	mc.Add(time.Minute)
	rec, _, err = ledger.Apply(rec, 1, inventory.TypeReturn, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.QuantityOnHand())
	assert.Equal(t, fixedNow.Add(2*time.Minute), rec.UpdatedAt())
}

func TestParseTransactionType(t *testing.T) {
	for _, tt := range inventory.AllTransactionTypes() {
		got, err := inventory.ParseTransactionType(tt.String())
		require.NoError(t, err)
		assert.Equal(t, tt, got)
	}

	got, err := inventory.ParseTransactionType("  SALE ")
	require.NoError(t, err)
	assert.Equal(t, inventory.TypeSale, got)

	for _, bad := range []string{"", "sale", "Sale", "TRANSFER"} {
		_, err := inventory.ParseTransactionType(bad)
		assert.ErrorIs(t, err, inventory.ErrInvalidTransactionType, bad)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	}
}

func TestTransactionTypeDirections(t *testing.T) {
	for _, tt := range inventory.AllTransactionTypes() {
		count := 0
		for _, b := range []bool{tt.IsInbound(), tt.IsOutbound(), tt.IsAbsolute()} {
			if b {
				count++
			}
		}
		assert.Equal(t, 1, count, "%s must have exactly one direction", tt)
	}
}

func TestNewStockRecord(t *testing.T) {
	_, err := inventory.NewStockRecord(uuid.New(), -1, 0)
	assert.ErrorIs(t, err, inventory.ErrNegativeStock)

	_, err = inventory.NewStockRecord(uuid.New(), 0, -1)
	assert.ErrorIs(t, err, inventory.ErrNegativeThreshold)

	rec, err := inventory.NewStockRecord(uuid.New(), 5, 5)
	require.NoError(t, err)
	assert.True(t, rec.IsLow(), "stock equal to threshold is low")

	rec, err = inventory.NewStockRecord(uuid.New(), 6, 5)
	require.NoError(t, err)
	assert.False(t, rec.IsLow())
}
