package queries

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/queries/inventory_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"commerce-ledger/internal/infra"
	"commerce-ledger/internal/pkg/errs"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

var ErrProductNotFound = errs.NewNotFound("product not found")

type InventoryQueries interface {
	GetStock(ctx context.Context, productID uuid.UUID) (*StockView, error)
	// ListProductTransactions returns the newest movements first.
	ListProductTransactions(ctx context.Context, productID uuid.UUID, limit int) ([]TransactionView, error)
	ListLowStockProducts(ctx context.Context) ([]StockView, error)
	ListActiveAlerts(ctx context.Context) ([]AlertView, error)
	// ProductAnalytics covers the UTC days from and to, both inclusive.
	ProductAnalytics(ctx context.Context, productID uuid.UUID, from, to time.Time) (*ProductAnalyticsView, error)
}

type InventoryReadStore interface {
	FindStock(ctx context.Context, productID uuid.UUID) (*StockView, error)
	ListTransactions(ctx context.Context, productID uuid.UUID, limit int) ([]TransactionView, error)
	// DailyMovements returns days with movements in [from, until), oldest first.
	DailyMovements(ctx context.Context, productID uuid.UUID, from, until time.Time) ([]DailyMovementView, error)
	ListLowStock(ctx context.Context) ([]StockView, error)
	ListActiveAlerts(ctx context.Context) ([]AlertView, error)
	FindAlertByID(ctx context.Context, id uuid.UUID) (*AlertView, error)
	FindAlertByProduct(ctx context.Context, productID uuid.UUID) (*AlertView, error)
	ProductCategories(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error)
}

type inventoryQueriesImpl struct {
	readStore InventoryReadStore
}

func NewInventoryQueries(readStore InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{
		readStore: readStore,
	}
}

func (q *inventoryQueriesImpl) GetStock(ctx context.Context, productID uuid.UUID) (*StockView, error) {
	stock, err := q.readStore.FindStock(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return stock, nil
}

func (q *inventoryQueriesImpl) ListProductTransactions(ctx context.Context, productID uuid.UUID, limit int) ([]TransactionView, error) {
	if _, err := q.GetStock(ctx, productID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	history, err := q.readStore.ListTransactions(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []TransactionView{}
	}
	return history, nil
}

func (q *inventoryQueriesImpl) ListLowStockProducts(ctx context.Context) ([]StockView, error) {
	products, err := q.readStore.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []StockView{}
	}
	return products, nil
}

func (q *inventoryQueriesImpl) ListActiveAlerts(ctx context.Context) ([]AlertView, error) {
	alerts, err := q.readStore.ListActiveAlerts(ctx)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []AlertView{}
	}
	return alerts, nil
}
