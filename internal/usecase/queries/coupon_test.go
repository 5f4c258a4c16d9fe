//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/usecase/queries"
	"commerce-ledger/internal/usecase/shared"
	"commerce-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewOf(b *builder.CouponBuilder) *queries.CouponView {
	c := b.BuildStored()
	return &queries.CouponView{
		ID:              c.ID(),
		Code:            c.Code().String(),
		Description:     c.Description(),
		DiscountType:    c.DiscountType().String(),
		DiscountValue:   c.DiscountValue(),
		MinimumPurchase: c.MinimumPurchase(),
		MaximumDiscount: c.MaximumDiscount(),
		StartDate:       c.StartDate(),
		EndDate:         c.EndDate(),
		UsageLimit:      c.UsageLimit(),
		UsageCount:      c.UsageCount(),
		Active:          c.IsActive(),
		CategoryIDs:     c.CategoryIDs(),
		ProductIDs:      c.ProductIDs(),
	}
}

func TestCalculateDiscount(t *testing.T) {
	ctx := context.Background()
	b := builder.NewCouponBuilder().ActiveNow()
	store := &fakeCouponStore{byCode: map[string]*queries.CouponView{"SAVE10": viewOf(b)}}
	categories := &fakeCategories{}
	q := queries.NewCouponQueries(store, categories, clock.NewMockClock(b.Now))

	t.Run("基本成功ケース", func(t *testing.T) {
		got, err := q.CalculateDiscount(ctx, "SAVE10", decimal.RequireFromString("150"), nil)
		require.NoError(t, err)
		assert.Equal(t, "15.00", got.StringFixed(2))
	})

	t.Run("code is normalized before lookup", func(t *testing.T) {
		got, err := q.CalculateDiscount(ctx, "  save10 ", decimal.RequireFromString("250"), nil)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", store.lastCode)
		assert.Equal(t, "20.00", got.StringFixed(2))
	})

	t.Run("unknown and malformed codes give zero", func(t *testing.T) {
		for _, code := range []string{"NOPE1", "", "x", "has space"} {
			got, err := q.CalculateDiscount(ctx, code, decimal.RequireFromString("100"), nil)
			require.NoError(t, err)
			assert.True(t, got.IsZero(), code)
		}
	})

	t.Run("store failure is returned", func(t *testing.T) {
		failing := &fakeCouponStore{err: errors.New("connection refused")}
		_, err := queries.NewCouponQueries(failing, categories, clock.NewMockClock(b.Now)).
			CalculateDiscount(ctx, "SAVE10", decimal.RequireFromString("100"), nil)
		assert.Error(t, err)
	})

	t.Run("unscoped coupon skips the category lookup", func(t *testing.T) {
		before := categories.calls
		lines := []shared.CartLine{{ProductID: uuid.New(), LineTotal: decimal.RequireFromString("50")}}
		_, err := q.CalculateDiscount(ctx, "SAVE10", decimal.RequireFromString("50"), lines)
		require.NoError(t, err)
		assert.Equal(t, before, categories.calls)
	})
}

func TestCalculateDiscount_Scoped(t *testing.T) {
	ctx := context.Background()
	shoes := uuid.New()
	sneaker, sock := uuid.New(), uuid.New()

	b := builder.NewCouponBuilder().ActiveNow().WithoutCap()
	b.Code = "SHOES10"
	b.CategoryIDs = []uuid.UUID{shoes}
	store := &fakeCouponStore{byCode: map[string]*queries.CouponView{"SHOES10": viewOf(b)}}
	categories := &fakeCategories{byProduct: map[uuid.UUID]*uuid.UUID{sneaker: &shoes}}
	q := queries.NewCouponQueries(store, categories, clock.NewMockClock(b.Now))

	lines := []shared.CartLine{
		{ProductID: sneaker, LineTotal: decimal.RequireFromString("80.00")},
		{ProductID: sock, LineTotal: decimal.RequireFromString("40.00")},
	}

	got, err := q.CalculateDiscount(ctx, "SHOES10", decimal.RequireFromString("120.00"), lines)
	require.NoError(t, err)
	assert.Equal(t, "8.00", got.StringFixed(2))
	assert.Equal(t, 1, categories.calls)
}

func TestListActiveCoupons(t *testing.T) {
	b := builder.NewCouponBuilder()
	store := &fakeCouponStore{}
	q := queries.NewCouponQueries(store, &fakeCategories{}, clock.NewMockClock(b.Now))

	got, err := q.ListActiveCoupons(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, b.Now, store.lastNow)
}

func TestGetCouponByID(t *testing.T) {
	q := queries.NewCouponQueries(&fakeCouponStore{}, &fakeCategories{}, clock.NewRealClock())

	_, err := q.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, queries.ErrCouponNotFound)
}
