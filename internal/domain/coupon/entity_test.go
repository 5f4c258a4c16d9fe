//go:build unit

package coupon_test

import (
	"strings"
	"testing"
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/pkg/ptr"
	"commerce-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "SAVE10", actual.Code().String())
		assert.Equal(t, coupon.DiscountPercentage, actual.DiscountType())
		assert.True(t, actual.DiscountValue().Equal(decimal.NewFromInt(10)))
		assert.True(t, actual.MaximumDiscount().Equal(decimal.RequireFromString("20")))
		assert.Nil(t, actual.MinimumPurchase())
		assert.Equal(t, 0, actual.UsageCount())
		assert.True(t, actual.IsActive(), "active defaults to true")
		assert.False(t, actual.IsScoped())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("code normalization", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "  summer_25 " }).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, coupon.Code("SUMMER_25"), actual.Code())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "too short", mutate: func(b *builder.CouponBuilder) { b.Code = "AB1" }, errIs: coupon.ErrInvalidCouponCode},
			{name: "minimum length", mutate: func(b *builder.CouponBuilder) { b.Code = "AB12" }},
			{name: "maximum length", mutate: func(b *builder.CouponBuilder) { b.Code = strings.Repeat("A", 16) }},
			{name: "too long", mutate: func(b *builder.CouponBuilder) { b.Code = strings.Repeat("A", 17) }, errIs: coupon.ErrInvalidCouponCode},
			{name: "hyphen allowed", mutate: func(b *builder.CouponBuilder) { b.Code = "BLACK-FRI" }},
			{name: "space inside", mutate: func(b *builder.CouponBuilder) { b.Code = "SAVE 10" }, errIs: coupon.ErrInvalidCouponCode},
			{name: "symbol", mutate: func(b *builder.CouponBuilder) { b.Code = "SAVE$10" }, errIs: coupon.ErrInvalidCouponCode},
		})
	})

	t.Run("discount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero value",
				mutate: func(b *builder.CouponBuilder) { b.DiscountValue = decimal.Zero },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
			{
				name:   "negative value",
				mutate: func(b *builder.CouponBuilder) { b.DiscountValue = decimal.NewFromInt(-5) },
				errIs:  coupon.ErrInvalidDiscountValue,
			},
			{
				name:   "percentage above 100",
				mutate: func(b *builder.CouponBuilder) { b.DiscountValue = decimal.RequireFromString("100.01") },
				errIs:  coupon.ErrInvalidDiscountPercent,
			},
			{
				name:   "fixed above 100 is fine",
				mutate: func(b *builder.CouponBuilder) { b.WithFixed("150.00") },
			},
			{
				name:   "unknown type",
				mutate: func(b *builder.CouponBuilder) { b.DiscountType = "BOGO" },
				errIs:  coupon.ErrInvalidDiscountType,
			},
			{
				name: "negative minimum purchase",
				mutate: func(b *builder.CouponBuilder) {
					v := decimal.NewFromInt(-1)
					b.MinimumPurchase = &v
				},
				errIs: coupon.ErrNegativeMinimumPurchase,
			},
			{
				name: "negative maximum discount",
				mutate: func(b *builder.CouponBuilder) {
					v := decimal.NewFromInt(-1)
					b.MaximumDiscount = &v
				},
				errIs: coupon.ErrNegativeMaximumDiscount,
			},
			{
				name:   "zero minimum purchase",
				mutate: func(b *builder.CouponBuilder) { b.WithMinimumPurchase("0") },
			},
		})
	})

	t.Run("date and usage validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "start after end",
				mutate: func(b *builder.CouponBuilder) { b.StartDate, b.EndDate = b.EndDate, b.StartDate },
				errIs:  coupon.ErrInvalidDateRange,
			},
			{
				name:   "start equals end",
				mutate: func(b *builder.CouponBuilder) { b.EndDate = b.StartDate },
				errIs:  coupon.ErrInvalidDateRange,
			},
			{
				name:   "start in the past",
				mutate: func(b *builder.CouponBuilder) { b.StartDate = b.Now.Add(-time.Minute) },
				errIs:  coupon.ErrDateNotInFuture,
			},
			{
				name:   "start exactly now",
				mutate: func(b *builder.CouponBuilder) { b.StartDate = b.Now },
				errIs:  coupon.ErrDateNotInFuture,
			},
			{
				name:   "zero usage limit",
				mutate: func(b *builder.CouponBuilder) { b.UsageLimit = 0 },
				errIs:  coupon.ErrInvalidUsageLimit,
			},
			{
				name:   "blank description",
				mutate: func(b *builder.CouponBuilder) { b.Description = "   " },
				errIs:  coupon.ErrEmptyDescription,
			},
		})
	})

	t.Run("validation errors are classified", func(t *testing.T) {
		_, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.UsageLimit = -1 }).BuildDomain()
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("freshly created coupon is not redeemable", func(t *testing.T) {
		b := builder.NewCouponBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		assert.False(t, coupon.IsRedeemable(actual, b.Now, decimal.NewFromInt(100)))
	})

	t.Run("scope ids are deduplicated", func(t *testing.T) {
		p := uuid.New()
		actual, err := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ProductIDs = []uuid.UUID{p, p}
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{p}, actual.ProductIDs())
		assert.True(t, actual.IsScoped())
	})
}

func TestCouponUpdate(t *testing.T) {
	t.Run("keeps usage count and id", func(t *testing.T) {
		b := builder.NewCouponBuilder().ActiveNow()
		b.UsageCount = 7
		c := b.BuildStored()
		id := c.ID()

		p := b.BuildParams()
		p.Description = "updated"
		p.UsageLimit = 50
		p.Active = ptr.To(false)
		later := b.Now.Add(time.Hour)
		require.NoError(t, c.Update(p, later))

		assert.Equal(t, id, c.ID())
		assert.Equal(t, 7, c.UsageCount())
		assert.Equal(t, 50, c.UsageLimit())
		assert.Equal(t, "updated", c.Description())
		assert.False(t, c.IsActive())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("unchanged window may already have started", func(t *testing.T) {
		b := builder.NewCouponBuilder().ActiveNow()
		c := b.BuildStored()
		require.NoError(t, c.Update(b.BuildParams(), b.Now))
	})

	t.Run("changed window must be in the future", func(t *testing.T) {
		b := builder.NewCouponBuilder().ActiveNow()
		c := b.BuildStored()
		p := b.BuildParams()
		p.EndDate = p.EndDate.Add(time.Hour)
		assert.ErrorIs(t, c.Update(p, b.Now), coupon.ErrDateNotInFuture)
	})

	t.Run("usage limit below usage count", func(t *testing.T) {
		b := builder.NewCouponBuilder().ActiveNow()
		b.UsageCount = 10
		c := b.BuildStored()
		p := b.BuildParams()
		p.UsageLimit = 9
		assert.ErrorIs(t, c.Update(p, b.Now), coupon.ErrUsageLimitBelowCount)
		assert.Equal(t, 100, c.UsageLimit(), "rejected update leaves coupon untouched")
	})
}

func TestCouponRedeem(t *testing.T) {
	b := builder.NewCouponBuilder().ActiveNow()
	b.UsageLimit = 2
	c := b.BuildStored()
	total := decimal.NewFromInt(100)

	require.NoError(t, c.Redeem(b.Now, total))
	require.NoError(t, c.Redeem(b.Now, total))
	assert.Equal(t, 2, c.UsageCount())
	assert.Equal(t, 0, c.RemainingUses())

	err := c.Redeem(b.Now, total)
	assert.ErrorIs(t, err, coupon.ErrCouponNotRedeemable)
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.Equal(t, 2, c.UsageCount())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
