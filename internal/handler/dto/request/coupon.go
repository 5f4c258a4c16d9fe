package request

import (
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount    = errs.NewValidation("amount must be a decimal number")
	ErrAmountPrecision  = errs.Mark(errs.NewValidation("amount must have at most 2 decimal places"), ErrInvalidAmount)
	ErrAmountOutOfRange = errs.Mark(errs.NewValidation("amount must be below 10000000000"), ErrInvalidAmount)
	maxAmountExclusive  = decimal.New(1, 10)
)

// MoneyScale matches the NUMERIC(12, 2) money columns.
const MoneyScale = 2

// CouponRequest is shared by create and update; update replaces every field.
type CouponRequest struct {
	Code            string      `json:"code" binding:"required"`
	Description     string      `json:"description" binding:"required,max=500"`
	DiscountType    string      `json:"discountType" binding:"required"`
	DiscountValue   string      `json:"discountValue" binding:"required"`
	MinimumPurchase *string     `json:"minimumPurchase"`
	MaximumDiscount *string     `json:"maximumDiscount"`
	StartDate       time.Time   `json:"startDate" binding:"required"`
	EndDate         time.Time   `json:"endDate" binding:"required"`
	UsageLimit      int         `json:"usageLimit" binding:"required,min=1,max=2147483647"`
	Active          *bool       `json:"active"`
	CategoryIDs     []uuid.UUID `json:"categoryIds"`
	ProductIDs      []uuid.UUID `json:"productIds"`
}

func (r *CouponRequest) ToParams() (coupon.CouponParams, error) {
	discountType, err := coupon.ParseDiscountType(r.DiscountType)
	if err != nil {
		return coupon.CouponParams{}, err
	}
	value, err := ParseAmount(r.DiscountValue)
	if err != nil {
		return coupon.CouponParams{}, err
	}
	minimum, err := parseOptionalAmount(r.MinimumPurchase)
	if err != nil {
		return coupon.CouponParams{}, err
	}
	maximum, err := parseOptionalAmount(r.MaximumDiscount)
	if err != nil {
		return coupon.CouponParams{}, err
	}

	return coupon.CouponParams{
		Code:            r.Code,
		Description:     r.Description,
		DiscountType:    discountType,
		DiscountValue:   value,
		MinimumPurchase: minimum,
		MaximumDiscount: maximum,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		UsageLimit:      r.UsageLimit,
		Active:          r.Active,
		CategoryIDs:     r.CategoryIDs,
		ProductIDs:      r.ProductIDs,
	}, nil
}

type CartItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	LineTotal string    `json:"lineTotal" binding:"required"`
}

type CalculateDiscountRequest struct {
	Code      string            `json:"code" binding:"required"`
	CartTotal string            `json:"cartTotal" binding:"required"`
	Items     []CartItemRequest `json:"items" binding:"omitempty,dive"`
}

// ToInput parses the money fields of the cart.
func (r *CalculateDiscountRequest) ToInput() (decimal.Decimal, []shared.CartLine, error) {
	total, err := ParseAmount(r.CartTotal)
	if err != nil {
		return decimal.Zero, nil, err
	}

	lines := make([]shared.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		lineTotal, err := ParseAmount(it.LineTotal)
		if err != nil {
			return decimal.Zero, nil, err
		}
		lines = append(lines, shared.CartLine{ProductID: it.ProductID, LineTotal: lineTotal})
	}
	return total, lines, nil
}

type RedeemCouponRequest = CalculateDiscountRequest

// ParseAmount accepts non-negative decimal strings such as "250" or "19.99".
// Trailing zeros past the cent are fine ("19.990"); anything that Postgres
// would round or overflow is rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	rounded := d.Round(MoneyScale)
	if !rounded.Equal(d) {
		return decimal.Zero, ErrAmountPrecision
	}
	if rounded.GreaterThanOrEqual(maxAmountExclusive) {
		return decimal.Zero, ErrAmountOutOfRange
	}
	return rounded, nil
}

func parseOptionalAmount(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseAmount(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
