package inventory

import (
	"time"

	"commerce-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidThreshold = errs.NewValidation("alert threshold must be positive")

// StockAlert is the per-product low-stock registration. At most one exists per product.
type StockAlert struct {
	id        uuid.UUID
	productID uuid.UUID
	threshold int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// LowStockEvent is handed to the notifier after the stock change is committed.
type LowStockEvent struct {
	ProductID    uuid.UUID `json:"productId"`
	CurrentStock int       `json:"currentStock"`
	Threshold    int       `json:"threshold"`
	OccurredAt   time.Time `json:"occurredAt"`
}

func NewStockAlert(productID uuid.UUID, threshold int, active bool, now time.Time) (*StockAlert, error) {
	if threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	return &StockAlert{
		id:        uuid.New(),
		productID: productID,
		threshold: threshold,
		active:    active,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructStockAlert(id, productID uuid.UUID, threshold int, active bool, createdAt, updatedAt time.Time) *StockAlert {
	return &StockAlert{
		id:        id,
		productID: productID,
		threshold: threshold,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *StockAlert) ID() uuid.UUID        { return a.id }
func (a *StockAlert) ProductID() uuid.UUID { return a.productID }
func (a *StockAlert) Threshold() int       { return a.threshold }
func (a *StockAlert) IsActive() bool       { return a.active }
func (a *StockAlert) CreatedAt() time.Time { return a.createdAt }
func (a *StockAlert) UpdatedAt() time.Time { return a.updatedAt }

func (a *StockAlert) ChangeSettings(threshold int, active bool, now time.Time) error {
	if threshold <= 0 {
		return ErrInvalidThreshold
	}
	a.threshold = threshold
	a.active = active
	a.updatedAt = now
	return nil
}

// Evaluate reports whether newStock reached the threshold of an active alert.
func (a *StockAlert) Evaluate(newStock int, at time.Time) (LowStockEvent, bool) {
	if a == nil || !a.active || newStock > a.threshold {
		return LowStockEvent{}, false
	}
	return LowStockEvent{
		ProductID:    a.productID,
		CurrentStock: newStock,
		Threshold:    a.threshold,
		OccurredAt:   at,
	}, true
}
