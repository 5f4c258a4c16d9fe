package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"
	"commerce-ledger/internal/usecase/queries"
)

type InventoryReadQueries interface {
	GetProductStock(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductStockRow, error)
	ListLowStockProducts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLowStockProductsRow, error)
	ListProductCategories(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ListProductCategoriesRow, error)
	ListTransactionsByProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTransactionsByProductParams) ([]sqlc.InventoryTransactions, error)
	ProductDailyMovements(ctx context.Context, db sqlc.DBTX, arg sqlc.ProductDailyMovementsParams) ([]sqlc.ProductDailyMovementsRow, error)
	GetStockAlertByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.StockAlerts, error)
	GetStockAlertByProductID(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.StockAlerts, error)
	ListActiveStockAlerts(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveStockAlertsRow, error)
}

type InventoryReadStore struct {
	queries InventoryReadQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryReadQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *InventoryReadStore) FindStock(ctx context.Context, productID uuid.UUID) (*queries.StockView, error) {
	row, err := s.queries.GetProductStock(ctx, s.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product stock", err)
	}

	view := toStockView(row.ID, row.Sku, row.Name, row.CategoryID, row.StockQuantity, row.LowStockThreshold, row.UpdatedAt.Time)
	return &view, nil
}

func (s *InventoryReadStore) ListTransactions(ctx context.Context, productID uuid.UUID, limit int) ([]queries.TransactionView, error) {
	rows, err := s.queries.ListTransactionsByProduct(ctx, s.db, sqlc.ListTransactionsByProductParams{
		ProductID: productID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory transactions", err)
	}

	result := make([]queries.TransactionView, len(rows))
	for i, row := range rows {
		result[i] = queries.TransactionView{
			ID:          row.ID,
			ProductID:   row.ProductID,
			Quantity:    int(row.Quantity),
			Type:        row.Type,
			Reference:   pgconv.StringPtrFromPgtype(row.Reference),
			StockBefore: int(row.StockBefore),
			StockAfter:  int(row.StockAfter),
			CreatedAt:   row.CreatedAt.Time,
		}
	}
	return result, nil
}

func (s *InventoryReadStore) DailyMovements(ctx context.Context, productID uuid.UUID, from, until time.Time) ([]queries.DailyMovementView, error) {
	rows, err := s.queries.ProductDailyMovements(ctx, s.db, sqlc.ProductDailyMovementsParams{
		ProductID: productID,
		FromTime:  pgconv.TimeToPgtype(from),
		UntilTime: pgconv.TimeToPgtype(until),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate inventory movements", err)
	}

	result := make([]queries.DailyMovementView, len(rows))
	for i, row := range rows {
		result[i] = queries.DailyMovementView{
			Day:               row.Day.Time,
			Sold:              int(row.Sold),
			Restocked:         int(row.Restocked),
			Returned:          int(row.Returned),
			OpeningStock:      int(row.OpeningStock),
			ClosingStock:      int(row.ClosingStock),
			LowStockCrossings: int(row.LowStockCrossings),
		}
	}
	return result, nil
}

func (s *InventoryReadStore) ListLowStock(ctx context.Context) ([]queries.StockView, error) {
	rows, err := s.queries.ListLowStockProducts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list low stock products", err)
	}

	result := make([]queries.StockView, len(rows))
	for i, row := range rows {
		result[i] = toStockView(row.ID, row.Sku, row.Name, row.CategoryID, row.StockQuantity, row.LowStockThreshold, row.UpdatedAt.Time)
	}
	return result, nil
}

func (s *InventoryReadStore) ListActiveAlerts(ctx context.Context) ([]queries.AlertView, error) {
	rows, err := s.queries.ListActiveStockAlerts(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active stock alerts", err)
	}

	result := make([]queries.AlertView, len(rows))
	for i, row := range rows {
		result[i] = queries.AlertView{
			ID:           row.ID,
			ProductID:    row.ProductID,
			Sku:          row.Sku,
			ProductName:  row.ProductName,
			Threshold:    int(row.Threshold),
			Active:       row.Active,
			CurrentStock: int(row.StockQuantity),
			Triggered:    row.Active && row.StockQuantity <= row.Threshold,
			CreatedAt:    row.CreatedAt.Time,
			UpdatedAt:    row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *InventoryReadStore) FindAlertByID(ctx context.Context, id uuid.UUID) (*queries.AlertView, error) {
	row, err := s.queries.GetStockAlertByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock alert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get stock alert", err)
	}
	return toAlertView(row), nil
}

func (s *InventoryReadStore) FindAlertByProduct(ctx context.Context, productID uuid.UUID) (*queries.AlertView, error) {
	row, err := s.queries.GetStockAlertByProductID(ctx, s.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stock alert not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get stock alert by product", err)
	}
	return toAlertView(row), nil
}

// ProductCategories omits unknown products from the result.
func (s *InventoryReadStore) ProductCategories(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	result := make(map[uuid.UUID]*uuid.UUID, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	rows, err := s.queries.ListProductCategories(ctx, s.db, productIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product categories", err)
	}
	for _, row := range rows {
		result[row.ID] = pgconv.UUIDPtrFromPgtype(row.CategoryID)
	}
	return result, nil
}

func toStockView(id uuid.UUID, sku, name string, categoryID pgtype.UUID, quantity, threshold int32, updatedAt time.Time) queries.StockView {
	return queries.StockView{
		ProductID:         id,
		Sku:               sku,
		Name:              name,
		CategoryID:        pgconv.UUIDPtrFromPgtype(categoryID),
		QuantityOnHand:    int(quantity),
		LowStockThreshold: int(threshold),
		IsLow:             quantity <= threshold,
		UpdatedAt:         updatedAt,
	}
}

func toAlertView(row sqlc.StockAlerts) *queries.AlertView {
	return &queries.AlertView{
		ID:        row.ID,
		ProductID: row.ProductID,
		Threshold: int(row.Threshold),
		Active:    row.Active,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
