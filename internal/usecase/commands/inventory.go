package commands

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory_mock.go -package=commandsmock

import (
	"context"

	"commerce-ledger/internal/domain/inventory"
	reqdto "commerce-ledger/internal/handler/dto/request"
	"commerce-ledger/internal/infra"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("commerce-ledger/usecase/commands")

var (
	ErrProductNotFound    = errs.NewNotFound("product not found")
	ErrStockAlertExists   = errs.NewConflict("stock alert already exists for product")
	ErrStockAlertNotFound = errs.NewNotFound("stock alert not found")
)

type RecordTransactionResult struct {
	Transaction inventory.Transaction
	Stock       inventory.StockRecord
	// LowStock is set when an active alert fired for the new quantity.
	LowStock *inventory.LowStockEvent
}

type InventoryCommands interface {
	RecordTransaction(ctx context.Context, req reqdto.RecordTransactionRequest) (*RecordTransactionResult, error)
	CreateStockAlert(ctx context.Context, req reqdto.CreateStockAlertRequest) (*inventory.StockAlert, error)
	UpdateStockAlert(ctx context.Context, alertID uuid.UUID, req reqdto.UpdateStockAlertRequest) (*inventory.StockAlert, error)
}

type inventoryCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *inventory.Ledger
	notifier LowStockNotifier
	clock    clock.Clock
}

func NewInventoryCommands(uow shared.UnitOfWork, notifier LowStockNotifier, clk clock.Clock) InventoryCommands {
	return &inventoryCommandsImpl{
		uow:      uow,
		ledger:   inventory.NewLedger(clk),
		notifier: notifier,
		clock:    clk,
	}
}

func (uc *inventoryCommandsImpl) RecordTransaction(ctx context.Context, req reqdto.RecordTransactionRequest) (*RecordTransactionResult, error) {
	ctx, span := tracer.Start(ctx, "InventoryCommands.RecordTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("product.id", req.ProductID.String()),
		attribute.String("transaction.type", req.Type),
		attribute.Int("transaction.quantity", req.Quantity),
	)

	txType, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, inventory.ErrInvalidQuantity
	}

	var result *RecordTransactionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, derr := tx.Stock().LockForUpdate(ctx, tx.DB(), req.ProductID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return derr
		}

		updated, entry, derr := uc.ledger.Apply(record, req.Quantity, txType, req.Reference)
		if derr != nil {
			return derr
		}
		if derr = tx.Stock().UpdateQuantity(ctx, tx.DB(), updated); derr != nil {
			return derr
		}
		if derr = tx.Transactions().Append(ctx, tx.DB(), entry); derr != nil {
			return derr
		}

		alert, derr := tx.Reads().AlertByProduct(ctx, req.ProductID)
		if derr != nil && !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}

		result = &RecordTransactionResult{Transaction: entry, Stock: updated}
		if event, fired := alert.Evaluate(updated.QuantityOnHand(), entry.CreatedAt()); fired {
			result.LowStock = &event
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.after", result.Stock.QuantityOnHand()))
	if result.LowStock != nil && uc.notifier != nil {
		uc.notifier.NotifyLowStock(ctx, *result.LowStock)
	}
	return result, nil
}

func (uc *inventoryCommandsImpl) CreateStockAlert(ctx context.Context, req reqdto.CreateStockAlertRequest) (*inventory.StockAlert, error) {
	alert, err := req.ToDomain(uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Alerts().Create(ctx, tx.DB(), alert)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrStockAlertExists
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return alert, nil
}

func (uc *inventoryCommandsImpl) UpdateStockAlert(ctx context.Context, alertID uuid.UUID, req reqdto.UpdateStockAlertRequest) (*inventory.StockAlert, error) {
	var alert *inventory.StockAlert
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, derr := tx.Reads().AlertByID(ctx, alertID)
		if derr != nil {
			return derr
		}
		if derr = req.ApplyTo(current, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Alerts().Update(ctx, tx.DB(), current); derr != nil {
			return derr
		}
		alert = current
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStockAlertNotFound
		}
		return nil, err
	}
	return alert, nil
}
