package shared

import (
	"context"
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/domain/inventory"
	sqlc "commerce-ledger/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Stock() StockRepository
	Transactions() TransactionRepository
	Alerts() StockAlertRepository
	Coupons() CouponRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads write-side aggregates. Inside Within it reads through the
// open transaction.
type CommandReads interface {
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	AlertByID(ctx context.Context, id uuid.UUID) (*inventory.StockAlert, error)
	AlertByProduct(ctx context.Context, productID uuid.UUID) (*inventory.StockAlert, error)
	// ProductCategories maps each known product to its category (nil when uncategorized).
	ProductCategories(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]*uuid.UUID, error)
}

type StockRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, productID uuid.UUID) (inventory.StockRecord, error)
	UpdateQuantity(ctx context.Context, tx sqlc.DBTX, record inventory.StockRecord) error
}

type TransactionRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, t inventory.Transaction) error
}

type StockAlertRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, alert *inventory.StockAlert) error
	Update(ctx context.Context, tx sqlc.DBTX, alert *inventory.StockAlert) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	ReplaceScopes(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, couponID uuid.UUID) (int, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
