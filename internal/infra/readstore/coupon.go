package readstore

import (
	"context"
	"time"

	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/pgconv"
	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponReadQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	ListActiveCoupons(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) ([]sqlc.Coupons, error)
	ListCouponCategoriesByCouponIDs(ctx context.Context, db sqlc.DBTX, couponIds []uuid.UUID) ([]sqlc.CouponCategories, error)
	ListCouponProductsByCouponIDs(ctx context.Context, db sqlc.DBTX, couponIds []uuid.UUID) ([]sqlc.CouponProducts, error)
}

type CouponReadStore struct {
	queries CouponReadQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponReadQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return r.single(ctx, row)
}

// FindByCode expects a normalized (upper-case) code.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return r.single(ctx, row)
}

func (r *CouponReadStore) ListActive(ctx context.Context, now time.Time) ([]queries.CouponView, error) {
	rows, err := r.queries.ListActiveCoupons(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active coupons", err)
	}
	if len(rows) == 0 {
		return []queries.CouponView{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	categories, products, err := r.scopes(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]queries.CouponView, 0, len(rows))
	for _, row := range rows {
		view, err := toCouponView(row, categories[row.ID], products[row.ID])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert coupon row", err)
		}
		result = append(result, *view)
	}
	return result, nil
}

func (r *CouponReadStore) single(ctx context.Context, row sqlc.Coupons) (*queries.CouponView, error) {
	categories, products, err := r.scopes(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}
	view, err := toCouponView(row, categories[row.ID], products[row.ID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}
	return view, nil
}

func (r *CouponReadStore) scopes(ctx context.Context, couponIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, map[uuid.UUID][]uuid.UUID, error) {
	categoryRows, err := r.queries.ListCouponCategoriesByCouponIDs(ctx, r.db, couponIDs)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list coupon categories", err)
	}
	productRows, err := r.queries.ListCouponProductsByCouponIDs(ctx, r.db, couponIDs)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list coupon products", err)
	}

	categories := make(map[uuid.UUID][]uuid.UUID)
	for _, row := range categoryRows {
		categories[row.CouponID] = append(categories[row.CouponID], row.CategoryID)
	}
	products := make(map[uuid.UUID][]uuid.UUID)
	for _, row := range productRows {
		products[row.CouponID] = append(products[row.CouponID], row.ProductID)
	}
	return categories, products, nil
}

func toCouponView(row sqlc.Coupons, categoryIDs, productIDs []uuid.UUID) (*queries.CouponView, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	minimum, err := pgconv.DecimalPtrFromNumeric(row.MinimumPurchase)
	if err != nil {
		return nil, err
	}
	maximum, err := pgconv.DecimalPtrFromNumeric(row.MaximumDiscount)
	if err != nil {
		return nil, err
	}

	if categoryIDs == nil {
		categoryIDs = []uuid.UUID{}
	}
	if productIDs == nil {
		productIDs = []uuid.UUID{}
	}

	return &queries.CouponView{
		ID:              row.ID,
		Code:            row.Code,
		Description:     row.Description,
		DiscountType:    row.DiscountType,
		DiscountValue:   value,
		MinimumPurchase: minimum,
		MaximumDiscount: maximum,
		StartDate:       row.StartDate.Time,
		EndDate:         row.EndDate.Time,
		UsageLimit:      int(row.UsageLimit),
		UsageCount:      int(row.UsageCount),
		Active:          row.Active,
		CategoryIDs:     categoryIDs,
		ProductIDs:      productIDs,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}, nil
}
