package request

import (
	"time"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/pkg/patch"

	"github.com/google/uuid"
)

type RecordTransactionRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=2147483647"`
	Type      string    `json:"type" binding:"required"`
	Reference *string   `json:"reference" binding:"omitempty,max=255"`
}

// ToDomain only parses the type; quantity rules belong to the ledger.
func (r *RecordTransactionRequest) ToDomain() (inventory.TransactionType, error) {
	return inventory.ParseTransactionType(r.Type)
}

type CreateStockAlertRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Threshold int       `json:"threshold" binding:"required,min=1,max=2147483647"`
	Active    *bool     `json:"active"`
}

func (r *CreateStockAlertRequest) ToDomain(now time.Time) (*inventory.StockAlert, error) {
	return inventory.NewStockAlert(r.ProductID, r.Threshold, patch.Coalesce(r.Active, true), now)
}

type UpdateStockAlertRequest struct {
	Threshold *int  `json:"threshold" binding:"omitempty,min=1,max=2147483647"`
	Active    *bool `json:"active"`
}

// ApplyTo keeps the current value of every omitted field.
func (r *UpdateStockAlertRequest) ApplyTo(alert *inventory.StockAlert, now time.Time) error {
	threshold := patch.Coalesce(r.Threshold, alert.Threshold())
	active := patch.Coalesce(r.Active, alert.IsActive())
	return alert.ChangeSettings(threshold, active, now)
}
