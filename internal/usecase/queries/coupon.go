package queries

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_mock.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/infra"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"
)

var ErrCouponNotFound = errs.NewNotFound("coupon not found")

type CouponQueries interface {
	ListActiveCoupons(ctx context.Context) ([]CouponView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	// CalculateDiscount never fails for an unknown, malformed or unusable code; the discount is zero.
	CalculateDiscount(ctx context.Context, code string, cartTotal decimal.Decimal, lines []shared.CartLine) (decimal.Decimal, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	ListActive(ctx context.Context, now time.Time) ([]CouponView, error)
}

type ProductCategoryReader interface {
	ProductCategories(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error)
}

type couponQueriesImpl struct {
	readStore  CouponReadStore
	categories ProductCategoryReader
	clock      clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, categories ProductCategoryReader, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{
		readStore:  readStore,
		categories: categories,
		clock:      clk,
	}
}

func (q *couponQueriesImpl) ListActiveCoupons(ctx context.Context) ([]CouponView, error) {
	coupons, err := q.readStore.ListActive(ctx, q.clock.Now())
	if err != nil {
		return nil, err
	}
	if coupons == nil {
		coupons = []CouponView{}
	}
	return coupons, nil
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	c, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *couponQueriesImpl) CalculateDiscount(ctx context.Context, code string, cartTotal decimal.Decimal, lines []shared.CartLine) (decimal.Decimal, error) {
	normalized, err := coupon.NewCouponCode(code)
	if err != nil {
		return decimal.Zero, nil
	}

	view, err := q.readStore.FindByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("discount requested for unknown coupon", "code", normalized.String())
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	c := view.ToDomain()
	if !c.IsScoped() || len(lines) == 0 {
		return coupon.ComputeDiscount(c, q.clock.Now(), cartTotal), nil
	}

	categories, err := q.categories.ProductCategories(ctx, shared.CartProductIDs(lines))
	if err != nil {
		return decimal.Zero, err
	}
	items := shared.ResolveCartItems(lines, categories)
	return coupon.ComputeScopedDiscount(c, q.clock.Now(), cartTotal, items), nil
}
