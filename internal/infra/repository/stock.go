package repository

import (
	"context"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StockWriteQueries interface {
	GetProductStockForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductStockForUpdateRow, error)
	UpdateProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductStockParams) error
}

type StockRepository struct {
	queries StockWriteQueries
}

func NewStockRepository(queries StockWriteQueries) *StockRepository {
	return &StockRepository{
		queries: queries,
	}
}

// LockForUpdate holds the product row until the surrounding transaction ends,
// so concurrent movements on one product are applied one after another.
func (r *StockRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID) (inventory.StockRecord, error) {
	row, err := r.queries.GetProductStockForUpdate(ctx, tx, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return inventory.StockRecord{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return inventory.StockRecord{}, infra.WrapRepoErr("failed to lock product stock", err)
	}

	return inventory.ReconstructStockRecord(
		row.ID,
		int(row.StockQuantity),
		int(row.LowStockThreshold),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func (r *StockRepository) UpdateQuantity(ctx context.Context, tx sqlc.DBTX, record inventory.StockRecord) error {
	params := sqlc.UpdateProductStockParams{
		ID:            record.ProductID(),
		StockQuantity: int32(record.QuantityOnHand()),
		UpdatedAt:     pgconv.TimeToPgtype(record.UpdatedAt()),
	}

	if err := r.queries.UpdateProductStock(ctx, tx, params); err != nil {
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("stock quantity check failed", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	return nil
}
