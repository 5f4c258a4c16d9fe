package repository

import (
	"context"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"
)

type TransactionWriteQueries interface {
	CreateInventoryTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInventoryTransactionParams) error
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
	}
}

// Append inserts the audit row. Rows are never updated or deleted afterwards.
func (r *TransactionRepository) Append(ctx context.Context, tx sqlc.DBTX, t inventory.Transaction) error {
	params := sqlc.CreateInventoryTransactionParams{
		ID:          t.ID(),
		ProductID:   t.ProductID(),
		Quantity:    int32(t.Quantity()),
		Type:        t.Type().String(),
		Reference:   pgconv.StringPtrToPgtype(t.Reference()),
		StockBefore: int32(t.StockBefore()),
		StockAfter:  int32(t.StockAfter()),
		CreatedAt:   pgconv.TimeToPgtype(t.CreatedAt()),
	}

	if err := r.queries.CreateInventoryTransaction(ctx, tx, params); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("product does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to append inventory transaction", err)
	}
	return nil
}
