package repository

import (
	"context"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (int64, error)
	IncrementCouponUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int32, error)
	DeleteCouponCategories(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) error
	DeleteCouponProducts(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) error
	AddCouponCategory(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCouponCategoryParams) error
	AddCouponProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.AddCouponProductParams) error
}

type CouponRepository struct {
	queries CouponWriteQueries
}

func NewCouponRepository(queries CouponWriteQueries) *CouponRepository {
	return &CouponRepository{
		queries: queries,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.CreateCouponParams{
		ID:              c.ID(),
		Code:            c.Code().String(),
		Description:     c.Description(),
		DiscountType:    c.DiscountType().String(),
		DiscountValue:   pgconv.NumericFromDecimal(c.DiscountValue()),
		MinimumPurchase: pgconv.NumericFromDecimalPtr(c.MinimumPurchase()),
		MaximumDiscount: pgconv.NumericFromDecimalPtr(c.MaximumDiscount()),
		StartDate:       pgconv.TimeToPgtype(c.StartDate()),
		EndDate:         pgconv.TimeToPgtype(c.EndDate()),
		UsageLimit:      int32(c.UsageLimit()),
		UsageCount:      int32(c.UsageCount()),
		Active:          c.IsActive(),
		CreatedAt:       pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}

	if err := r.queries.CreateCoupon(ctx, tx, params); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	params := sqlc.UpdateCouponParams{
		ID:              c.ID(),
		Code:            c.Code().String(),
		Description:     c.Description(),
		DiscountType:    c.DiscountType().String(),
		DiscountValue:   pgconv.NumericFromDecimal(c.DiscountValue()),
		MinimumPurchase: pgconv.NumericFromDecimalPtr(c.MinimumPurchase()),
		MaximumDiscount: pgconv.NumericFromDecimalPtr(c.MaximumDiscount()),
		StartDate:       pgconv.TimeToPgtype(c.StartDate()),
		EndDate:         pgconv.TimeToPgtype(c.EndDate()),
		UsageLimit:      int32(c.UsageLimit()),
		Active:          c.IsActive(),
		UpdatedAt:       pgconv.TimeToPgtype(c.UpdatedAt()),
	}

	affected, err := r.queries.UpdateCoupon(ctx, tx, params)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsCheckViolation(err) {
			return infra.WrapRepoErr("coupon usage limit below usage count", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

// ReplaceScopes rewrites both scope sets of the coupon.
func (r *CouponRepository) ReplaceScopes(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	if err := r.queries.DeleteCouponCategories(ctx, tx, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear coupon categories", err)
	}
	if err := r.queries.DeleteCouponProducts(ctx, tx, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear coupon products", err)
	}

	for _, categoryID := range c.CategoryIDs() {
		err := r.queries.AddCouponCategory(ctx, tx, sqlc.AddCouponCategoryParams{CouponID: c.ID(), CategoryID: categoryID})
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("coupon category does not exist", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to add coupon category", err)
		}
	}
	for _, productID := range c.ProductIDs() {
		err := r.queries.AddCouponProduct(ctx, tx, sqlc.AddCouponProductParams{CouponID: c.ID(), ProductID: productID})
		if err != nil {
			if pgconv.IsForeignKeyViolation(err) {
				return infra.WrapRepoErr("coupon product does not exist", err, infra.KindForeignKeyViolated)
			}
			return infra.WrapRepoErr("failed to add coupon product", err)
		}
	}
	return nil
}

// IncrementUsage is the conditional increment. No row back means the coupon
// became inactive or ran out of uses since it was read.
func (r *CouponRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID) (int, error) {
	count, err := r.queries.IncrementCouponUsage(ctx, tx, couponID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("coupon usage exhausted", err, infra.KindConflict)
		}
		return 0, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return int(count), nil
}
