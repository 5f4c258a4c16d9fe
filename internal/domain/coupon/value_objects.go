package coupon

import (
	"regexp"
	"strings"

	"commerce-ledger/internal/pkg/errs"
)

var (
	ErrInvalidCouponCode   = errs.NewValidation("invalid coupon code format")
	ErrInvalidDiscountType = errs.NewValidation("discount type must be PERCENTAGE or FIXED")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{4,16}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

func ParseDiscountType(s string) (DiscountType, error) {
	t := DiscountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidDiscountType
	}
	return t, nil
}

func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

func (t DiscountType) String() string {
	return string(t)
}
