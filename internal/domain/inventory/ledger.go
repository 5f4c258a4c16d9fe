package inventory

import (
	"fmt"
	"math"

	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errs.NewValidation("quantity must be positive")
	ErrInsufficientStock = errs.NewConflict("insufficient stock")
	ErrStockOverflow     = errs.NewValidation("stock quantity exceeds the storable maximum")
)

// MaxStockQuantity is the largest quantity or stock level the store can hold.
const MaxStockQuantity = math.MaxInt32

// InsufficientStockError carries the numbers behind a rejected outbound transaction.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
	Type      TransactionType
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d (%s)",
		e.ProductID, e.Available, e.Requested, e.Type)
}

func (e *InsufficientStockError) Is(target error) bool {
	return errs.Is(ErrInsufficientStock, target)
}

// Ledger applies stock movements. It holds no state besides the clock used to
// stamp transactions, so one instance can be shared by every request.
type Ledger struct {
	clock clock.Clock
}

func NewLedger(clk clock.Clock) *Ledger {
	return &Ledger{clock: clk}
}

// Apply computes the stock after one movement and the audit entry describing it.
// The input record is never modified; on error both return values are zero.
func (l *Ledger) Apply(record StockRecord, quantity int, txType TransactionType, reference *string) (StockRecord, Transaction, error) {
	if quantity <= 0 {
		return StockRecord{}, Transaction{}, ErrInvalidQuantity
	}
	if !txType.IsValid() {
		return StockRecord{}, Transaction{}, ErrInvalidTransactionType
	}
	if quantity > MaxStockQuantity {
		return StockRecord{}, Transaction{}, ErrStockOverflow
	}

	before := record.QuantityOnHand()
	var after int
	switch {
	case txType.IsInbound():
		after = before + quantity
	case txType.IsOutbound():
		after = before - quantity
	case txType.IsAbsolute():
		after = quantity
	}

	if after > MaxStockQuantity {
		return StockRecord{}, Transaction{}, ErrStockOverflow
	}
	if after < 0 {
		return StockRecord{}, Transaction{}, &InsufficientStockError{
			ProductID: record.ProductID(),
			Available: before,
			Requested: quantity,
			Type:      txType,
		}
	}

	now := l.clock.Now()
	tx := Transaction{
		id:          uuid.New(),
		productID:   record.ProductID(),
		quantity:    quantity,
		txType:      txType,
		reference:   reference,
		stockBefore: before,
		stockAfter:  after,
		createdAt:   now,
	}
	return record.withQuantity(after, now), tx, nil
}
