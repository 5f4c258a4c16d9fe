package coupon

import (
	"strings"
	"time"

	"commerce-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDescription        = errs.NewValidation("description is required")
	ErrInvalidDiscountValue    = errs.NewValidation("discount value must be positive")
	ErrInvalidDiscountPercent  = errs.NewValidation("percentage discount cannot exceed 100")
	ErrNegativeMinimumPurchase = errs.NewValidation("minimum purchase cannot be negative")
	ErrNegativeMaximumDiscount = errs.NewValidation("maximum discount cannot be negative")
	ErrInvalidDateRange        = errs.NewValidation("start date must be before end date")
	ErrDateNotInFuture         = errs.NewValidation("start and end dates must be in the future")
	ErrInvalidUsageLimit       = errs.NewValidation("usage limit must be positive")
	ErrUsageLimitBelowCount    = errs.NewValidation("usage limit cannot be lower than current usage count")
	ErrCouponNotRedeemable     = errs.NewConflict("coupon is not redeemable")
)

const MaxDescriptionLength = 500

var hundred = decimal.NewFromInt(100)

// CouponParams is the writable state of a coupon. Nil Active means true.
type CouponParams struct {
	Code            string
	Description     string
	DiscountType    DiscountType
	DiscountValue   decimal.Decimal
	MinimumPurchase *decimal.Decimal
	MaximumDiscount *decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	UsageLimit      int
	Active          *bool
	CategoryIDs     []uuid.UUID
	ProductIDs      []uuid.UUID
}

type Coupon struct {
	id              uuid.UUID
	code            Code
	description     string
	discountType    DiscountType
	discountValue   decimal.Decimal
	minimumPurchase *decimal.Decimal
	maximumDiscount *decimal.Decimal
	startDate       time.Time
	endDate         time.Time
	usageLimit      int
	usageCount      int
	active          bool
	categoryIDs     []uuid.UUID
	productIDs      []uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCoupon validates params for a fresh coupon. Both dates must lie after now,
// so a coupon is never redeemable at the moment it is created.
func NewCoupon(p CouponParams, now time.Time) (*Coupon, error) {
	code, err := validateParams(p)
	if err != nil {
		return nil, err
	}
	if !p.StartDate.After(now) || !p.EndDate.After(now) {
		return nil, ErrDateNotInFuture
	}

	c := &Coupon{
		id:        uuid.New(),
		createdAt: now,
	}
	c.apply(code, p, now)
	return c, nil
}

// Update replaces the writable state. usageCount is preserved, and the future-date
// rule only applies when the validity window itself changes.
func (c *Coupon) Update(p CouponParams, now time.Time) error {
	code, err := validateParams(p)
	if err != nil {
		return err
	}
	if p.UsageLimit < c.usageCount {
		return ErrUsageLimitBelowCount
	}
	datesChanged := !p.StartDate.Equal(c.startDate) || !p.EndDate.Equal(c.endDate)
	if datesChanged && (!p.StartDate.After(now) || !p.EndDate.After(now)) {
		return ErrDateNotInFuture
	}

	c.apply(code, p, now)
	return nil
}

func (c *Coupon) apply(code Code, p CouponParams, now time.Time) {
	active := true
	if p.Active != nil {
		active = *p.Active
	}
	c.code = code
	c.description = strings.TrimSpace(p.Description)
	c.discountType = p.DiscountType
	c.discountValue = p.DiscountValue
	c.minimumPurchase = p.MinimumPurchase
	c.maximumDiscount = p.MaximumDiscount
	c.startDate = p.StartDate
	c.endDate = p.EndDate
	c.usageLimit = p.UsageLimit
	c.active = active
	c.categoryIDs = dedupe(p.CategoryIDs)
	c.productIDs = dedupe(p.ProductIDs)
	c.updatedAt = now
}

func validateParams(p CouponParams) (Code, error) {
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return "", err
	}
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return "", ErrEmptyDescription
	}
	if len(desc) > MaxDescriptionLength {
		return "", errs.Mark(errs.Newf("description exceeds %d characters", MaxDescriptionLength), errs.ErrValidation)
	}
	if !p.DiscountType.IsValid() {
		return "", ErrInvalidDiscountType
	}
	if !p.DiscountValue.IsPositive() {
		return "", ErrInvalidDiscountValue
	}
	if p.DiscountType == DiscountPercentage && p.DiscountValue.GreaterThan(hundred) {
		return "", ErrInvalidDiscountPercent
	}
	if p.MinimumPurchase != nil && p.MinimumPurchase.IsNegative() {
		return "", ErrNegativeMinimumPurchase
	}
	if p.MaximumDiscount != nil && p.MaximumDiscount.IsNegative() {
		return "", ErrNegativeMaximumDiscount
	}
	if !p.StartDate.Before(p.EndDate) {
		return "", ErrInvalidDateRange
	}
	if p.UsageLimit <= 0 {
		return "", ErrInvalidUsageLimit
	}
	return code, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ReconstructCoupon rebuilds a persisted coupon without validation.
func ReconstructCoupon(
	id uuid.UUID,
	code, description string,
	discountType DiscountType,
	discountValue decimal.Decimal,
	minimumPurchase, maximumDiscount *decimal.Decimal,
	startDate, endDate time.Time,
	usageLimit, usageCount int,
	active bool,
	categoryIDs, productIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:              id,
		code:            Code(code),
		description:     description,
		discountType:    discountType,
		discountValue:   discountValue,
		minimumPurchase: minimumPurchase,
		maximumDiscount: maximumDiscount,
		startDate:       startDate,
		endDate:         endDate,
		usageLimit:      usageLimit,
		usageCount:      usageCount,
		active:          active,
		categoryIDs:     categoryIDs,
		productIDs:      productIDs,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Redeem consumes one use in memory. Storage performs the same check atomically.
func (c *Coupon) Redeem(now time.Time, cartTotal decimal.Decimal) error {
	if !IsRedeemable(c, now, cartTotal) {
		return ErrCouponNotRedeemable
	}
	c.usageCount++
	c.updatedAt = now
	return nil
}

func (c *Coupon) ID() uuid.UUID                     { return c.id }
func (c *Coupon) Code() Code                        { return c.code }
func (c *Coupon) Description() string               { return c.description }
func (c *Coupon) DiscountType() DiscountType        { return c.discountType }
func (c *Coupon) DiscountValue() decimal.Decimal    { return c.discountValue }
func (c *Coupon) MinimumPurchase() *decimal.Decimal { return c.minimumPurchase }
func (c *Coupon) MaximumDiscount() *decimal.Decimal { return c.maximumDiscount }
func (c *Coupon) StartDate() time.Time              { return c.startDate }
func (c *Coupon) EndDate() time.Time                { return c.endDate }
func (c *Coupon) UsageLimit() int                   { return c.usageLimit }
func (c *Coupon) UsageCount() int                   { return c.usageCount }
func (c *Coupon) IsActive() bool                    { return c.active }
func (c *Coupon) CategoryIDs() []uuid.UUID          { return c.categoryIDs }
func (c *Coupon) ProductIDs() []uuid.UUID           { return c.productIDs }
func (c *Coupon) CreatedAt() time.Time              { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time              { return c.updatedAt }

func (c *Coupon) IsScoped() bool {
	return len(c.categoryIDs) > 0 || len(c.productIDs) > 0
}

func (c *Coupon) RemainingUses() int {
	if c.usageCount >= c.usageLimit {
		return 0
	}
	return c.usageLimit - c.usageCount
}
