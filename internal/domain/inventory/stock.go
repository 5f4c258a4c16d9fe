package inventory

import (
	"time"

	"commerce-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNegativeStock     = errs.NewValidation("stock quantity cannot be negative")
	ErrNegativeThreshold = errs.NewValidation("low stock threshold cannot be negative")
)

// StockRecord is the authoritative on-hand quantity of one product.
// It is a value: Ledger.Apply returns a new record instead of mutating the input.
type StockRecord struct {
	productID         uuid.UUID
	quantityOnHand    int
	lowStockThreshold int
	updatedAt         time.Time
}

func NewStockRecord(productID uuid.UUID, quantityOnHand, lowStockThreshold int) (StockRecord, error) {
	if quantityOnHand < 0 {
		return StockRecord{}, ErrNegativeStock
	}
	if lowStockThreshold < 0 {
		return StockRecord{}, ErrNegativeThreshold
	}
	return StockRecord{
		productID:         productID,
		quantityOnHand:    quantityOnHand,
		lowStockThreshold: lowStockThreshold,
	}, nil
}

// ReconstructStockRecord is used by repositories for rows that already passed the CHECK constraints
func ReconstructStockRecord(productID uuid.UUID, quantityOnHand, lowStockThreshold int, updatedAt time.Time) StockRecord {
	return StockRecord{
		productID:         productID,
		quantityOnHand:    quantityOnHand,
		lowStockThreshold: lowStockThreshold,
		updatedAt:         updatedAt,
	}
}

func (s StockRecord) ProductID() uuid.UUID   { return s.productID }
func (s StockRecord) QuantityOnHand() int    { return s.quantityOnHand }
func (s StockRecord) LowStockThreshold() int { return s.lowStockThreshold }
func (s StockRecord) UpdatedAt() time.Time   { return s.updatedAt }

func (s StockRecord) IsLow() bool {
	return s.quantityOnHand <= s.lowStockThreshold
}

func (s StockRecord) withQuantity(quantity int, at time.Time) StockRecord {
	s.quantityOnHand = quantity
	s.updatedAt = at
	return s
}
