package commands

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/commands/coupon_mock.go -package=commandsmock

import (
	"context"

	"commerce-ledger/internal/domain/coupon"
	reqdto "commerce-ledger/internal/handler/dto/request"
	"commerce-ledger/internal/infra"
	"commerce-ledger/internal/pkg/clock"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrCouponCodeExists      = errs.NewConflict("coupon code already exists")
	ErrCouponNotFound        = errs.NewNotFound("coupon not found")
	ErrUnknownScopeReference = errs.NewValidation("coupon scope references an unknown category or product")
)

type RedeemResult struct {
	CouponID      uuid.UUID
	Code          string
	Discount      decimal.Decimal
	RemainingUses int
}

type CouponCommands interface {
	CreateCoupon(ctx context.Context, req reqdto.CouponRequest) (*coupon.Coupon, error)
	UpdateCoupon(ctx context.Context, couponID uuid.UUID, req reqdto.CouponRequest) (*coupon.Coupon, error)
	RedeemCoupon(ctx context.Context, req reqdto.RedeemCouponRequest) (*RedeemResult, error)
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (uc *couponCommandsImpl) CreateCoupon(ctx context.Context, req reqdto.CouponRequest) (*coupon.Coupon, error) {
	params, err := req.ToParams()
	if err != nil {
		return nil, err
	}
	c, err := coupon.NewCoupon(params, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Coupons().Create(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		return tx.Coupons().ReplaceScopes(ctx, tx.DB(), c)
	})
	if err != nil {
		return nil, mapCouponWriteErr(err)
	}
	return c, nil
}

func (uc *couponCommandsImpl) UpdateCoupon(ctx context.Context, couponID uuid.UUID, req reqdto.CouponRequest) (*coupon.Coupon, error) {
	params, err := req.ToParams()
	if err != nil {
		return nil, err
	}

	var updated *coupon.Coupon
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Reads().CouponByID(ctx, couponID)
		if derr != nil {
			return derr
		}
		if derr = c.Update(params, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Coupons().Update(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		if derr = tx.Coupons().ReplaceScopes(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		updated = c
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, mapCouponWriteErr(err)
	}
	return updated, nil
}

// RedeemCoupon computes the discount and consumes one use atomically. The
// guarded increment decides between concurrent redemptions of the last use.
func (uc *couponCommandsImpl) RedeemCoupon(ctx context.Context, req reqdto.RedeemCouponRequest) (*RedeemResult, error) {
	ctx, span := tracer.Start(ctx, "CouponCommands.RedeemCoupon")
	defer span.End()

	code, err := coupon.NewCouponCode(req.Code)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("coupon.code", code.String()))

	total, lines, err := req.ToInput()
	if err != nil {
		return nil, err
	}

	var result *RedeemResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Reads().CouponByCode(ctx, code.String())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return derr
		}

		var items []coupon.CartItem
		if c.IsScoped() && len(lines) > 0 {
			categories, derr := tx.Reads().ProductCategories(ctx, shared.CartProductIDs(lines))
			if derr != nil {
				return derr
			}
			items = shared.ResolveCartItems(lines, categories)
		}

		now := uc.clock.Now()
		discount := coupon.ComputeScopedDiscount(c, now, total, items)
		if derr = c.Redeem(now, total); derr != nil {
			return derr
		}

		usageCount, derr := tx.Coupons().IncrementUsage(ctx, tx.DB(), c.ID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return coupon.ErrCouponNotRedeemable
			}
			return derr
		}

		result = &RedeemResult{
			CouponID:      c.ID(),
			Code:          c.Code().String(),
			Discount:      discount,
			RemainingUses: c.UsageLimit() - usageCount,
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("coupon.discount", result.Discount.StringFixed(coupon.MoneyPlaces)),
		attribute.Int("coupon.remaining_uses", result.RemainingUses),
	)
	return result, nil
}

func mapCouponWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrCouponCodeExists
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrUnknownScopeReference
	case infra.IsKind(err, infra.KindConflict):
		return coupon.ErrUsageLimitBelowCount
	}
	return err
}
