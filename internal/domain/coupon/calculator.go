package coupon

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the scale of every discount amount returned to callers.
const MoneyPlaces = 2

// CartItem is one line of the cart used to restrict scoped coupons.
type CartItem struct {
	ProductID  uuid.UUID
	CategoryID *uuid.UUID
	LineTotal  decimal.Decimal
}

// IsRedeemable runs the checks in order and stops at the first failure.
// Both ends of the validity window are inclusive.
func IsRedeemable(c *Coupon, now time.Time, cartTotal decimal.Decimal) bool {
	if c == nil || !c.active {
		return false
	}
	if now.Before(c.startDate) || now.After(c.endDate) {
		return false
	}
	if c.usageCount >= c.usageLimit {
		return false
	}
	if c.minimumPurchase != nil && cartTotal.LessThan(*c.minimumPurchase) {
		return false
	}
	return true
}

// ComputeDiscount returns the cart-wide discount, or zero when the coupon is not redeemable.
func ComputeDiscount(c *Coupon, now time.Time, cartTotal decimal.Decimal) decimal.Decimal {
	if !IsRedeemable(c, now, cartTotal) {
		return decimal.Zero
	}
	return c.discountOn(cartTotal)
}

// ComputeScopedDiscount restricts the discount base to eligible items when the
// coupon is limited to categories or products. Without items, or for an unscoped
// coupon, it behaves like ComputeDiscount.
func ComputeScopedDiscount(c *Coupon, now time.Time, cartTotal decimal.Decimal, items []CartItem) decimal.Decimal {
	if !IsRedeemable(c, now, cartTotal) {
		return decimal.Zero
	}
	if !c.IsScoped() || len(items) == 0 {
		return c.discountOn(cartTotal)
	}

	base := decimal.Zero
	for _, it := range items {
		if c.appliesTo(it) {
			base = base.Add(it.LineTotal)
		}
	}
	if !base.IsPositive() {
		return decimal.Zero
	}
	// line totals come from the client and may overstate the cart
	return c.discountOn(decimal.Min(base, cartTotal))
}

func (c *Coupon) discountOn(base decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch c.discountType {
	case DiscountPercentage:
		amount = base.Mul(c.discountValue).Div(hundred)
	case DiscountFixed:
		amount = c.discountValue
	default:
		return decimal.Zero
	}

	if c.maximumDiscount != nil && amount.GreaterThan(*c.maximumDiscount) {
		amount = *c.maximumDiscount
	}
	if amount.GreaterThan(base) {
		amount = base
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return amount.Round(MoneyPlaces)
}

func (c *Coupon) appliesTo(it CartItem) bool {
	for _, id := range c.productIDs {
		if id == it.ProductID {
			return true
		}
	}
	if it.CategoryID == nil {
		return false
	}
	for _, id := range c.categoryIDs {
		if id == *it.CategoryID {
			return true
		}
	}
	return false
}
