//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "commerce-ledger/internal/domain/coupon"
	reqdto "commerce-ledger/internal/handler/dto/request"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Code            string
	Description     string
	DiscountType    domcoupon.DiscountType
	DiscountValue   decimal.Decimal
	MinimumPurchase *decimal.Decimal
	MaximumDiscount *decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	UsageLimit      int
	UsageCount      int
	Active          *bool
	CategoryIDs     []uuid.UUID
	ProductIDs      []uuid.UUID
	Now             time.Time
}

// NewCouponBuilder defaults to the SAVE10 example: 10% capped at 20.00, starting one hour from Now.
func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	maxDiscount := decimal.RequireFromString("20.00")
	return &CouponBuilder{
		Code:            "SAVE10",
		Description:     "10% off, up to 20",
		DiscountType:    domcoupon.DiscountPercentage,
		DiscountValue:   decimal.NewFromInt(10),
		MaximumDiscount: &maxDiscount,
		StartDate:       now.Add(time.Hour),
		EndDate:         now.Add(30 * 24 * time.Hour),
		UsageLimit:      100,
		Now:             now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithFixed(value string) *CouponBuilder {
	b.DiscountType = domcoupon.DiscountFixed
	b.DiscountValue = decimal.RequireFromString(value)
	b.MaximumDiscount = nil
	return b
}

func (b *CouponBuilder) WithMinimumPurchase(value string) *CouponBuilder {
	d := decimal.RequireFromString(value)
	b.MinimumPurchase = &d
	return b
}

func (b *CouponBuilder) WithoutCap() *CouponBuilder {
	b.MaximumDiscount = nil
	return b
}

// ActiveNow moves the window so that Now falls inside it.
func (b *CouponBuilder) ActiveNow() *CouponBuilder {
	b.StartDate = b.Now.Add(-24 * time.Hour)
	b.EndDate = b.Now.Add(24 * time.Hour)
	return b
}

func (b *CouponBuilder) BuildParams() domcoupon.CouponParams {
	return domcoupon.CouponParams{
		Code:            b.Code,
		Description:     b.Description,
		DiscountType:    b.DiscountType,
		DiscountValue:   b.DiscountValue,
		MinimumPurchase: b.MinimumPurchase,
		MaximumDiscount: b.MaximumDiscount,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		UsageLimit:      b.UsageLimit,
		Active:          b.Active,
		CategoryIDs:     b.CategoryIDs,
		ProductIDs:      b.ProductIDs,
	}
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.BuildParams(), b.Now)
}

// BuildStored skips creation rules, for coupons whose window already started.
func (b *CouponBuilder) BuildStored() *domcoupon.Coupon {
	active := true
	if b.Active != nil {
		active = *b.Active
	}
	return domcoupon.ReconstructCoupon(
		uuid.New(), b.Code, b.Description, b.DiscountType, b.DiscountValue,
		b.MinimumPurchase, b.MaximumDiscount, b.StartDate, b.EndDate,
		b.UsageLimit, b.UsageCount, active, b.CategoryIDs, b.ProductIDs,
		b.Now, b.Now,
	)
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	active := true
	if b.Active != nil {
		active = *b.Active
	}
	return sqlc.Coupons{
		ID:              uuid.New(),
		Code:            b.Code,
		Description:     b.Description,
		DiscountType:    b.DiscountType.String(),
		DiscountValue:   pgconv.NumericFromDecimal(b.DiscountValue),
		MinimumPurchase: pgconv.NumericFromDecimalPtr(b.MinimumPurchase),
		MaximumDiscount: pgconv.NumericFromDecimalPtr(b.MaximumDiscount),
		StartDate:       pgtype.Timestamptz{Time: b.StartDate, Valid: true},
		EndDate:         pgtype.Timestamptz{Time: b.EndDate, Valid: true},
		UsageLimit:      int32(b.UsageLimit),
		UsageCount:      int32(b.UsageCount),
		Active:          active,
		CreatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CouponRequest {
	req := reqdto.CouponRequest{
		Code:          b.Code,
		Description:   b.Description,
		DiscountType:  b.DiscountType.String(),
		DiscountValue: b.DiscountValue.String(),
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		UsageLimit:    b.UsageLimit,
		Active:        b.Active,
		CategoryIDs:   b.CategoryIDs,
		ProductIDs:    b.ProductIDs,
	}
	if b.MinimumPurchase != nil {
		s := b.MinimumPurchase.String()
		req.MinimumPurchase = &s
	}
	if b.MaximumDiscount != nil {
		s := b.MaximumDiscount.String()
		req.MaximumDiscount = &s
	}
	return req
}
