//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/infra"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW keeps state in memory. Within runs one closure at a time and
// restores the previous state when the closure fails.
type fakeUoW struct {
	mu sync.Mutex

	stock      map[uuid.UUID]inventory.StockRecord
	categories map[uuid.UUID]*uuid.UUID
	entries    []inventory.Transaction
	alerts     map[uuid.UUID]*inventory.StockAlert
	coupons    map[uuid.UUID]*coupon.Coupon
	jobs       map[uuid.UUID]shared.NotificationJob
	jobStatus  map[uuid.UUID]string
	lastLogin  map[uuid.UUID]time.Time
	users      map[string]sqlc.CreateUserParams

	withinCalls int
	failWith    error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		stock:      map[uuid.UUID]inventory.StockRecord{},
		categories: map[uuid.UUID]*uuid.UUID{},
		alerts:     map[uuid.UUID]*inventory.StockAlert{},
		coupons:    map[uuid.UUID]*coupon.Coupon{},
		jobs:       map[uuid.UUID]shared.NotificationJob{},
		jobStatus:  map[uuid.UUID]string{},
		lastLogin:  map[uuid.UUID]time.Time{},
		users:      map[string]sqlc.CreateUserParams{},
	}
}

func (u *fakeUoW) addProduct(quantity, lowStockThreshold int, categoryID *uuid.UUID) uuid.UUID {
	id := uuid.New()
	u.stock[id] = inventory.ReconstructStockRecord(id, quantity, lowStockThreshold, time.Time{})
	u.categories[id] = categoryID
	return id
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.withinCalls++
	if u.failWith != nil {
		return u.failWith
	}

	snap := u.snapshot()
	if err := fn(ctx, &fakeTx{u: u}); err != nil {
		u.restore(snap)
		return err
	}
	return nil
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeTx{u: u}
}

type fakeSnapshot struct {
	stock   map[uuid.UUID]inventory.StockRecord
	entries int
	alerts  map[uuid.UUID]*inventory.StockAlert
	coupons map[uuid.UUID]*coupon.Coupon
}

func (u *fakeUoW) snapshot() fakeSnapshot {
	s := fakeSnapshot{
		stock:   make(map[uuid.UUID]inventory.StockRecord, len(u.stock)),
		entries: len(u.entries),
		alerts:  make(map[uuid.UUID]*inventory.StockAlert, len(u.alerts)),
		coupons: make(map[uuid.UUID]*coupon.Coupon, len(u.coupons)),
	}
	for k, v := range u.stock {
		s.stock[k] = v
	}
	for k, v := range u.alerts {
		s.alerts[k] = copyAlert(v)
	}
	for k, v := range u.coupons {
		s.coupons[k] = copyCoupon(v)
	}
	return s
}

func (u *fakeUoW) restore(s fakeSnapshot) {
	u.stock = s.stock
	u.entries = u.entries[:s.entries]
	u.alerts = s.alerts
	u.coupons = s.coupons
}

func copyAlert(a *inventory.StockAlert) *inventory.StockAlert {
	return inventory.ReconstructStockAlert(a.ID(), a.ProductID(), a.Threshold(), a.IsActive(), a.CreatedAt(), a.UpdatedAt())
}

func copyCoupon(c *coupon.Coupon) *coupon.Coupon {
	return coupon.ReconstructCoupon(
		c.ID(), c.Code().String(), c.Description(), c.DiscountType(), c.DiscountValue(),
		c.MinimumPurchase(), c.MaximumDiscount(), c.StartDate(), c.EndDate(),
		c.UsageLimit(), c.UsageCount(), c.IsActive(), c.CategoryIDs(), c.ProductIDs(),
		c.CreatedAt(), c.UpdatedAt(),
	)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// fakeTx implements every repository and the command reads over fakeUoW.
type fakeTx struct {
	u *fakeUoW
}

func (t *fakeTx) Stock() shared.StockRepository                { return t }
func (t *fakeTx) Transactions() shared.TransactionRepository   { return t }
func (t *fakeTx) Alerts() shared.StockAlertRepository          { return fakeAlerts{t.u} }
func (t *fakeTx) Coupons() shared.CouponRepository             { return fakeCoupons{t.u} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t }
func (t *fakeTx) Users() shared.UserRepository                 { return t }
func (t *fakeTx) Reads() shared.CommandReads                   { return t }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }

func (t *fakeTx) LockForUpdate(_ context.Context, _ sqlc.DBTX, productID uuid.UUID) (inventory.StockRecord, error) {
	rec, ok := t.u.stock[productID]
	if !ok {
		return inventory.StockRecord{}, notFound("product not found")
	}
	return rec, nil
}

func (t *fakeTx) UpdateQuantity(_ context.Context, _ sqlc.DBTX, record inventory.StockRecord) error {
	t.u.stock[record.ProductID()] = record
	return nil
}

func (t *fakeTx) Append(_ context.Context, _ sqlc.DBTX, entry inventory.Transaction) error {
	t.u.entries = append(t.u.entries, entry)
	return nil
}

func (t *fakeTx) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
	id := uuid.New()
	t.u.jobs[id] = job
	t.u.jobStatus[id] = job.Status
	return id, nil
}

func (t *fakeTx) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, _ *string) error {
	t.u.jobStatus[jobID] = status
	return nil
}

func (t *fakeTx) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	t.u.lastLogin[userID] = at
	return nil
}

func (t *fakeTx) Create(_ context.Context, _ sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
	if _, ok := t.u.users[params.Email]; ok {
		return uuid.Nil, infra.WrapRepoErr("user exists", nil, infra.KindDuplicateKey)
	}
	t.u.users[params.Email] = params
	return uuid.New(), nil
}

func (t *fakeTx) CouponByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, ok := t.u.coupons[id]
	if !ok {
		return nil, notFound("coupon not found")
	}
	return copyCoupon(c), nil
}

func (t *fakeTx) CouponByCode(_ context.Context, code string) (*coupon.Coupon, error) {
	for _, c := range t.u.coupons {
		if c.Code().String() == code {
			return copyCoupon(c), nil
		}
	}
	return nil, notFound("coupon not found")
}

func (t *fakeTx) AlertByID(_ context.Context, id uuid.UUID) (*inventory.StockAlert, error) {
	a, ok := t.u.alerts[id]
	if !ok {
		return nil, notFound("stock alert not found")
	}
	return copyAlert(a), nil
}

func (t *fakeTx) AlertByProduct(_ context.Context, productID uuid.UUID) (*inventory.StockAlert, error) {
	for _, a := range t.u.alerts {
		if a.ProductID() == productID {
			return copyAlert(a), nil
		}
	}
	return nil, notFound("stock alert not found")
}

func (t *fakeTx) ProductCategories(_ context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	out := map[uuid.UUID]*uuid.UUID{}
	for _, id := range productIDs {
		if cat, ok := t.u.categories[id]; ok {
			out[id] = cat
		}
	}
	return out, nil
}

type fakeAlerts struct{ u *fakeUoW }

func (f fakeAlerts) Create(_ context.Context, _ sqlc.DBTX, alert *inventory.StockAlert) error {
	if _, ok := f.u.stock[alert.ProductID()]; !ok {
		return infra.WrapRepoErr("product missing", nil, infra.KindForeignKeyViolated)
	}
	for _, a := range f.u.alerts {
		if a.ProductID() == alert.ProductID() {
			return infra.WrapRepoErr("alert exists", nil, infra.KindDuplicateKey)
		}
	}
	f.u.alerts[alert.ID()] = copyAlert(alert)
	return nil
}

func (f fakeAlerts) Update(_ context.Context, _ sqlc.DBTX, alert *inventory.StockAlert) error {
	if _, ok := f.u.alerts[alert.ID()]; !ok {
		return notFound("stock alert not found")
	}
	f.u.alerts[alert.ID()] = copyAlert(alert)
	return nil
}

type fakeCoupons struct{ u *fakeUoW }

func (f fakeCoupons) Create(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	for _, existing := range f.u.coupons {
		if existing.Code() == c.Code() {
			return infra.WrapRepoErr("code exists", nil, infra.KindDuplicateKey)
		}
	}
	f.u.coupons[c.ID()] = copyCoupon(c)
	return nil
}

func (f fakeCoupons) Update(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	if _, ok := f.u.coupons[c.ID()]; !ok {
		return notFound("coupon not found")
	}
	for id, existing := range f.u.coupons {
		if id != c.ID() && existing.Code() == c.Code() {
			return infra.WrapRepoErr("code exists", nil, infra.KindDuplicateKey)
		}
	}
	f.u.coupons[c.ID()] = copyCoupon(c)
	return nil
}

func (f fakeCoupons) ReplaceScopes(_ context.Context, _ sqlc.DBTX, c *coupon.Coupon) error {
	for _, id := range c.ProductIDs() {
		if _, ok := f.u.stock[id]; !ok {
			return infra.WrapRepoErr("unknown product", nil, infra.KindForeignKeyViolated)
		}
	}
	return nil
}

// IncrementUsage mirrors the guarded UPDATE on the stored row.
func (f fakeCoupons) IncrementUsage(_ context.Context, _ sqlc.DBTX, couponID uuid.UUID) (int, error) {
	c, ok := f.u.coupons[couponID]
	if !ok || !c.IsActive() || c.UsageCount() >= c.UsageLimit() {
		return 0, infra.WrapRepoErr("coupon usage exhausted", nil, infra.KindConflict)
	}
	next := coupon.ReconstructCoupon(
		c.ID(), c.Code().String(), c.Description(), c.DiscountType(), c.DiscountValue(),
		c.MinimumPurchase(), c.MaximumDiscount(), c.StartDate(), c.EndDate(),
		c.UsageLimit(), c.UsageCount()+1, c.IsActive(), c.CategoryIDs(), c.ProductIDs(),
		c.CreatedAt(), c.UpdatedAt(),
	)
	f.u.coupons[couponID] = next
	return next.UsageCount(), nil
}
