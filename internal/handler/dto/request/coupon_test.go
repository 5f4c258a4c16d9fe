//go:build unit

package request

import (
	"testing"
	"time"

	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/pkg/ptr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("受け付ける金額", func(t *testing.T) {
		cases := []struct {
			in   string
			want string
		}{
			{in: "250", want: "250"},
			{in: "19.99", want: "19.99"},
			{in: "19.990", want: "19.99"},
			{in: "0", want: "0"},
			{in: "9999999999.99", want: "9999999999.99"},
		}
		for _, c := range cases {
			t.Run(c.in, func(t *testing.T) {
				got, err := ParseAmount(c.in)
				require.NoError(t, err)
				assert.True(t, decimal.RequireFromString(c.want).Equal(got), "got %s", got)
			})
		}
	})

	t.Run("拒否する金額", func(t *testing.T) {
		cases := []struct {
			in    string
			errIs error
		}{
			{in: "abc", errIs: ErrInvalidAmount},
			{in: "-1", errIs: ErrInvalidAmount},
			{in: "0.001", errIs: ErrAmountPrecision},
			{in: "10.005", errIs: ErrAmountPrecision},
			{in: "10000000000", errIs: ErrAmountOutOfRange},
			{in: "1e12", errIs: ErrAmountOutOfRange},
		}
		for _, c := range cases {
			t.Run(c.in, func(t *testing.T) {
				_, err := ParseAmount(c.in)
				require.ErrorIs(t, err, c.errIs)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.True(t, errs.Is(err, errs.ErrValidation))
			})
		}
	})
}

func couponRequest() CouponRequest {
	start := time.Now().Add(24 * time.Hour)
	return CouponRequest{
		Code:          "SAVE20",
		Description:   "20 percent off",
		DiscountType:  "PERCENTAGE",
		DiscountValue: "20",
		StartDate:     start,
		EndDate:       start.Add(30 * 24 * time.Hour),
		UsageLimit:    100,
	}
}

func TestCouponRequestToParams_Amounts(t *testing.T) {
	t.Run("丸めが必要な値引き額は拒否", func(t *testing.T) {
		req := couponRequest()
		req.DiscountValue = "0.001"
		_, err := req.ToParams()
		assert.ErrorIs(t, err, ErrAmountPrecision)
	})

	t.Run("列の桁を超える上限額", func(t *testing.T) {
		req := couponRequest()
		req.MaximumDiscount = ptr.To("10000000000")
		_, err := req.ToParams()
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("最低購入額の端数", func(t *testing.T) {
		req := couponRequest()
		req.MinimumPurchase = ptr.To("10.005")
		_, err := req.ToParams()
		assert.ErrorIs(t, err, ErrAmountPrecision)
	})

	t.Run("末尾ゼロは正規化される", func(t *testing.T) {
		req := couponRequest()
		req.DiscountValue = "10.500"
		params, err := req.ToParams()
		require.NoError(t, err)
		assert.Equal(t, "10.5", params.DiscountValue.String())
	})
}

func TestCalculateDiscountRequestToInput_LinePrecision(t *testing.T) {
	req := CalculateDiscountRequest{
		Code:      "SAVE20",
		CartTotal: "100.00",
		Items:     []CartItemRequest{{LineTotal: "49.999"}},
	}
	_, _, err := req.ToInput()
	assert.ErrorIs(t, err, ErrAmountPrecision)
}

