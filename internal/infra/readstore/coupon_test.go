//go:build unit

package readstore

import (
	"context"
	"testing"

	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCouponReadQueries struct {
	mock.Mock
}

func (m *MockCouponReadQueries) GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func (m *MockCouponReadQueries) GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error) {
	args := m.Called(ctx, db, code)
	return args.Get(0).(sqlc.Coupons), args.Error(1)
}

func (m *MockCouponReadQueries) ListActiveCoupons(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Coupons, error) {
	args := m.Called(ctx, db, now)
	return args.Get(0).([]sqlc.Coupons), args.Error(1)
}

func (m *MockCouponReadQueries) ListCouponCategoriesByCouponIDs(ctx context.Context, db sqlc.DBTX, couponIds []uuid.UUID) ([]sqlc.CouponCategories, error) {
	args := m.Called(ctx, db, couponIds)
	return args.Get(0).([]sqlc.CouponCategories), args.Error(1)
}

func (m *MockCouponReadQueries) ListCouponProductsByCouponIDs(ctx context.Context, db sqlc.DBTX, couponIds []uuid.UUID) ([]sqlc.CouponProducts, error) {
	args := m.Called(ctx, db, couponIds)
	return args.Get(0).([]sqlc.CouponProducts), args.Error(1)
}

func TestCouponFindByCode(t *testing.T) {
	b := builder.NewCouponBuilder().ActiveNow()
	row := b.BuildInfra()
	category := uuid.New()

	t.Run("loads decimals and scopes", func(t *testing.T) {
		q := new(MockCouponReadQueries)
		q.On("GetCouponByCode", mock.Anything, mock.Anything, "SAVE10").Return(row, nil)
		q.On("ListCouponCategoriesByCouponIDs", mock.Anything, mock.Anything, []uuid.UUID{row.ID}).
			Return([]sqlc.CouponCategories{{CouponID: row.ID, CategoryID: category}}, nil)
		q.On("ListCouponProductsByCouponIDs", mock.Anything, mock.Anything, []uuid.UUID{row.ID}).
			Return([]sqlc.CouponProducts{}, nil)

		view, err := NewCouponReadStore(q, nil).FindByCode(context.Background(), "SAVE10")

		require.NoError(t, err)
		assert.Equal(t, row.ID, view.ID)
		assert.True(t, view.DiscountValue.Equal(decimal.NewFromInt(10)))
		require.NotNil(t, view.MaximumDiscount)
		assert.True(t, view.MaximumDiscount.Equal(decimal.RequireFromString("20.00")))
		assert.Nil(t, view.MinimumPurchase)
		assert.Equal(t, []uuid.UUID{category}, view.CategoryIDs)
		assert.Empty(t, view.ProductIDs)
		assert.NotNil(t, view.ProductIDs)

		c := view.ToDomain()
		assert.True(t, c.IsScoped())
		assert.Equal(t, "SAVE10", c.Code().String())
		q.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockCouponReadQueries)
		q.On("GetCouponByCode", mock.Anything, mock.Anything, "NOPE").Return(sqlc.Coupons{}, pgx.ErrNoRows)

		view, err := NewCouponReadStore(q, nil).FindByCode(context.Background(), "NOPE")

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("null discount value is a failure", func(t *testing.T) {
		broken := row
		broken.DiscountValue = pgtype.Numeric{}
		q := new(MockCouponReadQueries)
		q.On("GetCouponByCode", mock.Anything, mock.Anything, "SAVE10").Return(broken, nil)
		q.On("ListCouponCategoriesByCouponIDs", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.CouponCategories{}, nil)
		q.On("ListCouponProductsByCouponIDs", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.CouponProducts{}, nil)

		_, err := NewCouponReadStore(q, nil).FindByCode(context.Background(), "SAVE10")

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCouponListActive(t *testing.T) {
	b := builder.NewCouponBuilder().ActiveNow()
	first := b.BuildInfra()
	second := builder.NewCouponBuilder().ActiveNow().WithFixed("5.00").With(func(b *builder.CouponBuilder) { b.Code = "FIVEOFF" }).BuildInfra()
	product := uuid.New()

	q := new(MockCouponReadQueries)
	q.On("ListActiveCoupons", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: b.Now, Valid: true}).
		Return([]sqlc.Coupons{first, second}, nil)
	q.On("ListCouponCategoriesByCouponIDs", mock.Anything, mock.Anything, []uuid.UUID{first.ID, second.ID}).
		Return([]sqlc.CouponCategories{}, nil).Once()
	q.On("ListCouponProductsByCouponIDs", mock.Anything, mock.Anything, []uuid.UUID{first.ID, second.ID}).
		Return([]sqlc.CouponProducts{{CouponID: second.ID, ProductID: product}}, nil).Once()

	views, err := NewCouponReadStore(q, nil).ListActive(context.Background(), b.Now)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Empty(t, views[0].ProductIDs)
	assert.Equal(t, []uuid.UUID{product}, views[1].ProductIDs)
	assert.Equal(t, "FIXED", views[1].DiscountType)
	q.AssertExpectations(t)
}
