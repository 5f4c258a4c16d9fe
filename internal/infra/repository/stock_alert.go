package repository

import (
	"context"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"
)

type StockAlertWriteQueries interface {
	CreateStockAlert(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStockAlertParams) error
	UpdateStockAlert(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateStockAlertParams) (int64, error)
}

type StockAlertRepository struct {
	queries StockAlertWriteQueries
}

func NewStockAlertRepository(queries StockAlertWriteQueries) *StockAlertRepository {
	return &StockAlertRepository{
		queries: queries,
	}
}

func (r *StockAlertRepository) Create(ctx context.Context, tx sqlc.DBTX, alert *inventory.StockAlert) error {
	params := sqlc.CreateStockAlertParams{
		ID:        alert.ID(),
		ProductID: alert.ProductID(),
		Threshold: int32(alert.Threshold()),
		Active:    alert.IsActive(),
		CreatedAt: pgconv.TimeToPgtype(alert.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(alert.UpdatedAt()),
	}

	err := r.queries.CreateStockAlert(ctx, tx, params)
	switch {
	case err == nil:
		return nil
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr("stock alert already exists for product", err, infra.KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr("product does not exist", err, infra.KindForeignKeyViolated)
	default:
		return infra.WrapRepoErr("failed to create stock alert", err)
	}
}

func (r *StockAlertRepository) Update(ctx context.Context, tx sqlc.DBTX, alert *inventory.StockAlert) error {
	params := sqlc.UpdateStockAlertParams{
		ID:        alert.ID(),
		Threshold: int32(alert.Threshold()),
		Active:    alert.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(alert.UpdatedAt()),
	}

	affected, err := r.queries.UpdateStockAlert(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update stock alert", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("stock alert not found", nil, infra.KindNotFound)
	}
	return nil
}
