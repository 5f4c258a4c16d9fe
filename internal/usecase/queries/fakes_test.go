//go:build unit

package queries_test

import (
	"context"
	"time"

	"commerce-ledger/internal/infra"
	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

type fakeCouponStore struct {
	byCode   map[string]*queries.CouponView
	active   []queries.CouponView
	err      error
	lastCode string
	lastNow  time.Time
}

func (f *fakeCouponStore) FindByID(_ context.Context, id uuid.UUID) (*queries.CouponView, error) {
	for _, v := range f.byCode {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCouponStore) FindByCode(_ context.Context, code string) (*queries.CouponView, error) {
	f.lastCode = code
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.byCode[code]; ok {
		return v, nil
	}
	return nil, errNotFound
}

func (f *fakeCouponStore) ListActive(_ context.Context, now time.Time) ([]queries.CouponView, error) {
	f.lastNow = now
	return f.active, f.err
}

type fakeCategories struct {
	byProduct map[uuid.UUID]*uuid.UUID
	calls     int
}

func (f *fakeCategories) ProductCategories(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	f.calls++
	out := make(map[uuid.UUID]*uuid.UUID, len(ids))
	for _, id := range ids {
		if c, ok := f.byProduct[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

type fakeInventoryStore struct {
	stock     map[uuid.UUID]*queries.StockView
	days      []queries.DailyMovementView
	lastLimit int
	lastFrom  time.Time
	lastUntil time.Time
}

func (f *fakeInventoryStore) FindStock(_ context.Context, productID uuid.UUID) (*queries.StockView, error) {
	if s, ok := f.stock[productID]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeInventoryStore) ListTransactions(_ context.Context, _ uuid.UUID, limit int) ([]queries.TransactionView, error) {
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeInventoryStore) DailyMovements(_ context.Context, _ uuid.UUID, from, until time.Time) ([]queries.DailyMovementView, error) {
	f.lastFrom, f.lastUntil = from, until
	return f.days, nil
}

func (f *fakeInventoryStore) ListLowStock(context.Context) ([]queries.StockView, error) {
	return nil, nil
}

func (f *fakeInventoryStore) ListActiveAlerts(context.Context) ([]queries.AlertView, error) {
	return nil, nil
}

func (f *fakeInventoryStore) FindAlertByID(context.Context, uuid.UUID) (*queries.AlertView, error) {
	return nil, errNotFound
}

func (f *fakeInventoryStore) FindAlertByProduct(context.Context, uuid.UUID) (*queries.AlertView, error) {
	return nil, errNotFound
}

func (f *fakeInventoryStore) ProductCategories(context.Context, []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	return map[uuid.UUID]*uuid.UUID{}, nil
}

type fakeJobStore struct {
	lastStatus string
	lastLimit  int
}

func (f *fakeJobStore) ListByStatus(_ context.Context, status string, limit int) ([]queries.NotificationJobView, error) {
	f.lastStatus, f.lastLimit = status, limit
	return nil, nil
}
