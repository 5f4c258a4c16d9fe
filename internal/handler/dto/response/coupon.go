package response

import (
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money fields are decimal strings with two places.
type CouponResponse struct {
	ID              uuid.UUID   `json:"id"`
	Code            string      `json:"code"`
	Description     string      `json:"description"`
	DiscountType    string      `json:"discountType"`
	DiscountValue   string      `json:"discountValue"`
	MinimumPurchase *string     `json:"minimumPurchase"`
	MaximumDiscount *string     `json:"maximumDiscount"`
	StartDate       time.Time   `json:"startDate"`
	EndDate         time.Time   `json:"endDate"`
	UsageLimit      int         `json:"usageLimit"`
	UsageCount      int         `json:"usageCount"`
	Active          bool        `json:"active"`
	CategoryIDs     []uuid.UUID `json:"categoryIds"`
	ProductIDs      []uuid.UUID `json:"productIds"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

type DiscountResponse struct {
	Discount string `json:"discount"`
}

type RedeemResponse struct {
	CouponID      uuid.UUID `json:"couponId"`
	Code          string    `json:"code"`
	Discount      string    `json:"discount"`
	RemainingUses int       `json:"remainingUses"`
}

func Money(d decimal.Decimal) string {
	return d.StringFixed(coupon.MoneyPlaces)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := Money(*d)
	return &s
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func FromCouponView(v *queries.CouponView) CouponResponse {
	return CouponResponse{
		ID:              v.ID,
		Code:            v.Code,
		Description:     v.Description,
		DiscountType:    v.DiscountType,
		DiscountValue:   v.DiscountValue.String(),
		MinimumPurchase: moneyPtr(v.MinimumPurchase),
		MaximumDiscount: moneyPtr(v.MaximumDiscount),
		StartDate:       v.StartDate,
		EndDate:         v.EndDate,
		UsageLimit:      v.UsageLimit,
		UsageCount:      v.UsageCount,
		Active:          v.Active,
		CategoryIDs:     nonNilIDs(v.CategoryIDs),
		ProductIDs:      nonNilIDs(v.ProductIDs),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromCouponViews(vs []queries.CouponView) []CouponResponse {
	res := make([]CouponResponse, 0, len(vs))
	for i := range vs {
		res = append(res, FromCouponView(&vs[i]))
	}
	return res
}

func FromCoupon(c *coupon.Coupon) CouponResponse {
	return CouponResponse{
		ID:              c.ID(),
		Code:            c.Code().String(),
		Description:     c.Description(),
		DiscountType:    c.DiscountType().String(),
		DiscountValue:   c.DiscountValue().String(),
		MinimumPurchase: moneyPtr(c.MinimumPurchase()),
		MaximumDiscount: moneyPtr(c.MaximumDiscount()),
		StartDate:       c.StartDate(),
		EndDate:         c.EndDate(),
		UsageLimit:      c.UsageLimit(),
		UsageCount:      c.UsageCount(),
		Active:          c.IsActive(),
		CategoryIDs:     nonNilIDs(c.CategoryIDs()),
		ProductIDs:      nonNilIDs(c.ProductIDs()),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func FromRedeemResult(r *commands.RedeemResult) RedeemResponse {
	return RedeemResponse{
		CouponID:      r.CouponID,
		Code:          r.Code,
		Discount:      Money(r.Discount),
		RemainingUses: r.RemainingUses,
	}
}
