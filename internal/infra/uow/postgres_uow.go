package uow

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/infra/readstore"
	"commerce-ledger/internal/infra/repository"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"
	"commerce-ledger/internal/pkg/config"
	"commerce-ledger/internal/pkg/errs"
	"commerce-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATEs worth another attempt. Sales and redemptions lock the product or
// coupon row, so a hot row surfaces as deadlock or lock timeout.
const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	maxRetries  int
	retryBase   time.Duration
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.TxConfig) shared.UnitOfWork {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		maxRetries:  max(cfg.MaxRetries, 0),
		retryBase:   cfg.RetryBase,
		lockTimeout: cfg.LockTimeout,
	}
}

// Within runs fn in a READ COMMITTED transaction, retrying the whole of fn on
// retryable failures. fn must not have side effects outside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if attempt > 0 {
			wait := calculateBackoff(attempt-1, u.retryBase)
			slog.WarnContext(ctx, "retrying transaction",
				"attempt", attempt+1,
				"wait_ms", wait.Milliseconds(),
				"error", lastErr.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		lastErr = u.attempt(ctx, fn)
		if !shouldRetry(lastErr, attempt, u.maxRetries) {
			break
		}
	}

	if lastErr != nil && isRetryableError(lastErr) {
		slog.ErrorContext(ctx, "transaction failed after max retries",
			"attempts", u.maxRetries+1,
			"error", lastErr.Error())
		return errs.Mark(errs.Mark(lastErr, errMaxRetriesExceeded), errs.ErrTransient)
	}
	return lastErr
}

// attempt owns one pgx transaction; rollback after commit is a no-op.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if u.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
		if _, err := pgxTx.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "set lock_timeout")
		}
	}

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// WithinReadOnly gives fn one snapshot across several reads.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errs.Is(err, pgx.ErrTxClosed) {
		slog.WarnContext(ctx, "rollback failed", "error", err.Error())
	}
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return attempt < maxRetries && isRetryableError(err)
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	stockRepo        shared.StockRepository
	transactionRepo  shared.TransactionRepository
	alertRepo        shared.StockAlertRepository
	couponRepo       shared.CouponRepository
	notificationRepo shared.NotificationRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Stock() shared.StockRepository {
	if t.stockRepo == nil {
		t.stockRepo = repository.NewStockRepository(t.uow.q)
	}
	return t.stockRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q)
	}
	return t.transactionRepo
}

func (t *pgTx) Alerts() shared.StockAlertRepository {
	if t.alertRepo == nil {
		t.alertRepo = repository.NewStockAlertRepository(t.uow.q)
	}
	return t.alertRepo
}

func (t *pgTx) Coupons() shared.CouponRepository {
	if t.couponRepo == nil {
		t.couponRepo = repository.NewCouponRepository(t.uow.q)
	}
	return t.couponRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	couponStore    *readstore.CouponReadStore
	inventoryStore *readstore.InventoryReadStore
}

func (r *commandReads) coupons() *readstore.CouponReadStore {
	if r.couponStore == nil {
		r.couponStore = readstore.NewCouponReadStore(r.uow.q, r.dbtx)
	}
	return r.couponStore
}

func (r *commandReads) inventory() *readstore.InventoryReadStore {
	if r.inventoryStore == nil {
		r.inventoryStore = readstore.NewInventoryReadStore(r.uow.q, r.dbtx)
	}
	return r.inventoryStore
}

func (r *commandReads) CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	view, err := r.coupons().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view.ToDomain(), nil
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	view, err := r.coupons().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return view.ToDomain(), nil
}

func (r *commandReads) AlertByID(ctx context.Context, id uuid.UUID) (*inventory.StockAlert, error) {
	view, err := r.inventory().FindAlertByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return view.ToDomain(), nil
}

func (r *commandReads) AlertByProduct(ctx context.Context, productID uuid.UUID) (*inventory.StockAlert, error) {
	view, err := r.inventory().FindAlertByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return view.ToDomain(), nil
}

func (r *commandReads) ProductCategories(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error) {
	return r.inventory().ProductCategories(ctx, productIDs)
}
