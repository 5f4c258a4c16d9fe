package queries

import (
	"time"

	"commerce-ledger/internal/domain/coupon"
	"commerce-ledger/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockView represents read-optimized product stock data
type StockView struct {
	ProductID         uuid.UUID  `json:"product_id"`
	Sku               string     `json:"sku"`
	Name              string     `json:"name"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
	QuantityOnHand    int        `json:"quantity_on_hand"`
	LowStockThreshold int        `json:"low_stock_threshold"`
	IsLow             bool       `json:"is_low"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TransactionView is one entry of a product's movement history
type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Type        string    `json:"type"`
	Reference   *string   `json:"reference,omitempty"`
	StockBefore int       `json:"stock_before"`
	StockAfter  int       `json:"stock_after"`
	CreatedAt   time.Time `json:"created_at"`
}

// DailyMovementView aggregates one UTC day of a product's ledger. Only days
// with at least one movement are reported.
type DailyMovementView struct {
	Day               time.Time `json:"day"`
	Sold              int       `json:"sold"`
	Restocked         int       `json:"restocked"`
	Returned          int       `json:"returned"`
	OpeningStock      int       `json:"opening_stock"`
	ClosingStock      int       `json:"closing_stock"`
	LowStockCrossings int       `json:"low_stock_crossings"`
}

type DailyAnalyticsView struct {
	DailyMovementView
	Turnover decimal.Decimal `json:"turnover"`
}

// ProductAnalyticsView summarizes a product's movements over [From, To], both
// days inclusive.
type ProductAnalyticsView struct {
	ProductID         uuid.UUID            `json:"product_id"`
	From              time.Time            `json:"from"`
	To                time.Time            `json:"to"`
	TotalSales        int                  `json:"total_sales"`
	TotalRestocks     int                  `json:"total_restocks"`
	TotalReturns      int                  `json:"total_returns"`
	AverageTurnover   decimal.Decimal      `json:"average_turnover"`
	MaxTurnover       decimal.Decimal      `json:"max_turnover"`
	MinTurnover       decimal.Decimal      `json:"min_turnover"`
	DaysOutOfStock    int                  `json:"days_out_of_stock"`
	LowStockIncidents int                  `json:"low_stock_incidents"`
	Days              []DailyAnalyticsView `json:"days"`
}

// AlertView joins the alert with the product it watches. Sku, ProductName and
// CurrentStock are only filled by listings.
type AlertView struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	Sku          string    `json:"sku,omitempty"`
	ProductName  string    `json:"product_name,omitempty"`
	Threshold    int       `json:"threshold"`
	Active       bool      `json:"active"`
	CurrentStock int       `json:"current_stock"`
	Triggered    bool      `json:"triggered"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v *AlertView) ToDomain() *inventory.StockAlert {
	return inventory.ReconstructStockAlert(v.ID, v.ProductID, v.Threshold, v.Active, v.CreatedAt, v.UpdatedAt)
}

// CouponView represents read-optimized coupon data including its scopes
type CouponView struct {
	ID              uuid.UUID        `json:"id"`
	Code            string           `json:"code"`
	Description     string           `json:"description"`
	DiscountType    string           `json:"discount_type"`
	DiscountValue   decimal.Decimal  `json:"discount_value"`
	MinimumPurchase *decimal.Decimal `json:"minimum_purchase,omitempty"`
	MaximumDiscount *decimal.Decimal `json:"maximum_discount,omitempty"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	UsageLimit      int              `json:"usage_limit"`
	UsageCount      int              `json:"usage_count"`
	Active          bool             `json:"active"`
	CategoryIDs     []uuid.UUID      `json:"category_ids"`
	ProductIDs      []uuid.UUID      `json:"product_ids"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (v *CouponView) ToDomain() *coupon.Coupon {
	return coupon.ReconstructCoupon(
		v.ID, v.Code, v.Description, coupon.DiscountType(v.DiscountType), v.DiscountValue,
		v.MinimumPurchase, v.MaximumDiscount, v.StartDate, v.EndDate,
		v.UsageLimit, v.UsageCount, v.Active, v.CategoryIDs, v.ProductIDs,
		v.CreatedAt, v.UpdatedAt,
	)
}

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// NotificationJobView is one recorded delivery attempt of a low-stock event
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
