//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commerce-ledger/internal/domain/inventory"
	reqdto "commerce-ledger/internal/handler/dto/request"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/pkg/ptr"
	"commerce-ledger/internal/usecase/commands"
	commandsmock "commerce-ledger/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newInventoryCommands(t *testing.T) (commands.InventoryCommands, *fakeUoW, *commandsmock.MockLowStockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	notifier := commandsmock.NewMockLowStockNotifier(ctrl)
	uow := newFakeUoW()
	return commands.NewInventoryCommands(uow, notifier, clock.NewMockClock(fixedNow)), uow, notifier
}

func TestRecordTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("sale decrements stock and appends entry", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(100, 10, nil)

		res, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{
			ProductID: productID,
			Quantity:  30,
			Type:      "SALE",
			Reference: ptr.To("ORDER-1"),
		})
		require.NoError(t, err)

		assert.Equal(t, 70, res.Stock.QuantityOnHand())
		assert.Equal(t, 100, res.Transaction.StockBefore())
		assert.Equal(t, 70, res.Transaction.StockAfter())
		assert.Equal(t, inventory.TypeSale, res.Transaction.Type())
		assert.Equal(t, fixedNow, res.Transaction.CreatedAt())
		assert.Nil(t, res.LowStock)
		assert.Equal(t, 70, uow.stock[productID].QuantityOnHand())
		require.Len(t, uow.entries, 1)
		assert.Equal(t, "ORDER-1", *uow.entries[0].Reference())
	})

	t.Run("adjustment sets absolute quantity", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(100, 10, nil)

		res, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 42, Type: "ADJUSTMENT"})
		require.NoError(t, err)
		assert.Equal(t, 42, res.Stock.QuantityOnHand())
	})

	t.Run("insufficient stock leaves state untouched", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(5, 0, nil)

		_, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 6, Type: "SALE"})
		require.Error(t, err)
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.True(t, errs.Is(err, errs.ErrConflict))

		var detail *inventory.InsufficientStockError
		require.True(t, errs.As(err, &detail))
		assert.Equal(t, 5, detail.Available)
		assert.Equal(t, 6, detail.Requested)

		assert.Equal(t, 5, uow.stock[productID].QuantityOnHand())
		assert.Empty(t, uow.entries)
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _ := newInventoryCommands(t)
		_, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: uuid.New(), Quantity: 1, Type: "PURCHASE"})
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("validation fails before opening a transaction", func(t *testing.T) {
		cases := []struct {
			name  string
			req   reqdto.RecordTransactionRequest
			errIs error
		}{
			{name: "unknown type", req: reqdto.RecordTransactionRequest{Quantity: 1, Type: "TRANSFER"}, errIs: inventory.ErrInvalidTransactionType},
			{name: "zero quantity", req: reqdto.RecordTransactionRequest{Quantity: 0, Type: "SALE"}, errIs: inventory.ErrInvalidQuantity},
			{name: "negative quantity", req: reqdto.RecordTransactionRequest{Quantity: -3, Type: "RETURN"}, errIs: inventory.ErrInvalidQuantity},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				uc, uow, _ := newInventoryCommands(t)
				c.req.ProductID = uow.addProduct(10, 0, nil)

				_, err := uc.RecordTransaction(ctx, c.req)
				assert.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Zero(t, uow.withinCalls)
			})
		}
	})

	t.Run("active alert fires after commit", func(t *testing.T) {
		uc, uow, notifier := newInventoryCommands(t)
		productID := uow.addProduct(12, 0, nil)
		alert, err := inventory.NewStockAlert(productID, 10, true, fixedNow)
		require.NoError(t, err)
		uow.alerts[alert.ID()] = alert

		want := inventory.LowStockEvent{ProductID: productID, CurrentStock: 10, Threshold: 10, OccurredAt: fixedNow}
		notifier.EXPECT().NotifyLowStock(gomock.Any(), want).Times(1)

		res, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 2, Type: "SALE"})
		require.NoError(t, err)
		require.NotNil(t, res.LowStock)
		if diff := cmp.Diff(want, *res.LowStock); diff != "" {
			t.Errorf("low stock event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("inactive alert stays silent", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(12, 0, nil)
		alert, err := inventory.NewStockAlert(productID, 10, false, fixedNow)
		require.NoError(t, err)
		uow.alerts[alert.ID()] = alert

		res, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 5, Type: "SALE"})
		require.NoError(t, err)
		assert.Nil(t, res.LowStock)
	})

	t.Run("failed transaction never notifies", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(3, 0, nil)
		alert, err := inventory.NewStockAlert(productID, 10, true, fixedNow)
		require.NoError(t, err)
		uow.alerts[alert.ID()] = alert

		_, err = uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 4, Type: "SALE"})
		assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
	})

	t.Run("uow failure is returned as is", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(3, 0, nil)
		uow.failWith = errs.Mark(errs.New("serialization failure"), errs.ErrTransient)

		_, err := uc.RecordTransaction(ctx, reqdto.RecordTransactionRequest{ProductID: productID, Quantity: 1, Type: "SALE"})
		assert.True(t, errs.Is(err, errs.ErrTransient))
	})
}

func TestStockAlertCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults to active", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(50, 0, nil)

		alert, err := uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: productID, Threshold: 5})
		require.NoError(t, err)
		assert.True(t, alert.IsActive())
		assert.Equal(t, 5, alert.Threshold())
		assert.Len(t, uow.alerts, 1)
	})

	t.Run("second alert for same product", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(50, 0, nil)

		_, err := uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: productID, Threshold: 5})
		require.NoError(t, err)
		_, err = uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: productID, Threshold: 8})
		assert.ErrorIs(t, err, commands.ErrStockAlertExists)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("unknown product", func(t *testing.T) {
		uc, _, _ := newInventoryCommands(t)
		_, err := uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: uuid.New(), Threshold: 5})
		assert.ErrorIs(t, err, commands.ErrProductNotFound)
	})

	t.Run("non-positive threshold", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(50, 0, nil)
		_, err := uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: productID, Threshold: 0})
		assert.ErrorIs(t, err, inventory.ErrInvalidThreshold)
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		uc, uow, _ := newInventoryCommands(t)
		productID := uow.addProduct(50, 0, nil)
		created, err := uc.CreateStockAlert(ctx, reqdto.CreateStockAlertRequest{ProductID: productID, Threshold: 5})
		require.NoError(t, err)

		updated, err := uc.UpdateStockAlert(ctx, created.ID(), reqdto.UpdateStockAlertRequest{Active: ptr.To(false)})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Threshold())
		assert.False(t, updated.IsActive())
		assert.False(t, uow.alerts[created.ID()].IsActive())
	})

	t.Run("update unknown alert", func(t *testing.T) {
		uc, _, _ := newInventoryCommands(t)
		_, err := uc.UpdateStockAlert(ctx, uuid.New(), reqdto.UpdateStockAlertRequest{Threshold: ptr.To(3)})
		assert.ErrorIs(t, err, commands.ErrStockAlertNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
