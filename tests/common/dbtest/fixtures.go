//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run
// inside a test transaction too.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// bcrypt hash of "password123"
const DefaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, DefaultPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestCategory(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

type ProductFixture struct {
	Sku               string
	Name              string
	CategoryID        *uuid.UUID
	StockQuantity     int
	LowStockThreshold int
}

func CreateTestProduct(t *testing.T, db DBLike, p ProductFixture) uuid.UUID {
	t.Helper()

	if p.Sku == "" {
		p.Sku = "SKU-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if p.Name == "" {
		p.Name = "Product " + p.Sku
	}

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO products (sku, name, category_id, stock_quantity, low_stock_threshold)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		p.Sku, p.Name, p.CategoryID, p.StockQuantity, p.LowStockThreshold).Scan(&id)
	require.NoError(t, err)
	return id
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var qty int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT stock_quantity FROM products WHERE id = $1", productID).Scan(&qty))
	return qty
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// CreateNotificationJob records a low-stock delivery attempt created at createdAt.
func CreateNotificationJob(t *testing.T, db DBLike, status string, createdAt time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO notification_jobs (kind, topic, payload, run_at, status, created_at, updated_at)
		 VALUES ('low_stock', 'inventory.low-stock', '{}'::jsonb, $2, $1, $2, $2) RETURNING id`,
		status, createdAt).Scan(&id)
	require.NoError(t, err)
	return id
}

type MovementFixture struct {
	Type        string
	Quantity    int
	StockBefore int
	StockAfter  int
	CreatedAt   time.Time
}

// CreateMovement writes a ledger row directly, so tests can backdate it. The
// product's stock column is left untouched.
func CreateMovement(t *testing.T, db DBLike, productID uuid.UUID, m MovementFixture) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO inventory_transactions (id, product_id, quantity, type, stock_before, stock_after, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New(), productID, m.Quantity, m.Type, m.StockBefore, m.StockAfter, m.CreatedAt)
	require.NoError(t, err)
}

type CouponFixture struct {
	Code            string
	DiscountType    string
	DiscountValue   string
	MinimumPurchase *string
	MaximumDiscount *string
	UsageLimit      int
	UsageCount      int
	Active          bool
	StartDate       time.Time
	EndDate         time.Time
}

// SaveCoupon20 is a 10% coupon capped at 20.00, valid around now.
func SaveCoupon20() CouponFixture {
	capped := "20.00"
	now := time.Now()
	return CouponFixture{
		Code:            "SAVE20",
		DiscountType:    "PERCENTAGE",
		DiscountValue:   "10",
		MaximumDiscount: &capped,
		UsageLimit:      100,
		Active:          true,
		StartDate:       now.Add(-24 * time.Hour),
		EndDate:         now.Add(24 * time.Hour),
	}
}

func CreateTestCoupon(t *testing.T, db DBLike, c CouponFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	now := time.Now()
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupons (id, code, description, discount_type, discount_value, minimum_purchase, maximum_discount,
		                      start_date, end_date, usage_limit, usage_count, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`,
		id, c.Code, "fixture "+c.Code, c.DiscountType, decimal.RequireFromString(c.DiscountValue).String(),
		numericArg(c.MinimumPurchase), numericArg(c.MaximumDiscount),
		c.StartDate, c.EndDate, c.UsageLimit, c.UsageCount, c.Active, now)
	require.NoError(t, err)
	return id
}

// numericArg passes amounts as text so NUMERIC columns parse them exactly.
func numericArg(s *string) any {
	if s == nil {
		return nil
	}
	return decimal.RequireFromString(*s).String()
}

// StartCouponNow moves an API-created coupon's window start into the past.
func StartCouponNow(t *testing.T, db DBLike, code string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE coupons SET start_date = now() - interval '1 minute' WHERE code = $1", code)
	require.NoError(t, err)
}

func CouponUsage(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT usage_count FROM coupons WHERE code = $1", code).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the goose version table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
