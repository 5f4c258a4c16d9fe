package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an append-only audit entry. It has no setters.
type Transaction struct {
	id          uuid.UUID
	productID   uuid.UUID
	quantity    int
	txType      TransactionType
	reference   *string
	stockBefore int
	stockAfter  int
	createdAt   time.Time
}

func ReconstructTransaction(
	id, productID uuid.UUID,
	quantity int,
	txType TransactionType,
	reference *string,
	stockBefore, stockAfter int,
	createdAt time.Time,
) Transaction {
	return Transaction{
		id:          id,
		productID:   productID,
		quantity:    quantity,
		txType:      txType,
		reference:   reference,
		stockBefore: stockBefore,
		stockAfter:  stockAfter,
		createdAt:   createdAt,
	}
}

func (t Transaction) ID() uuid.UUID         { return t.id }
func (t Transaction) ProductID() uuid.UUID  { return t.productID }
func (t Transaction) Quantity() int         { return t.quantity }
func (t Transaction) Type() TransactionType { return t.txType }
func (t Transaction) Reference() *string    { return t.reference }
func (t Transaction) StockBefore() int      { return t.stockBefore }
func (t Transaction) StockAfter() int       { return t.stockAfter }
func (t Transaction) CreatedAt() time.Time  { return t.createdAt }
