package response

import (
	"time"

	"commerce-ledger/internal/domain/inventory"
	"commerce-ledger/internal/usecase/commands"
	"commerce-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	Quantity    int       `json:"quantity"`
	Type        string    `json:"type"`
	Reference   *string   `json:"reference"`
	StockBefore int       `json:"stockBefore"`
	StockAfter  int       `json:"stockAfter"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LowStockResponse struct {
	CurrentStock int `json:"currentStock"`
	Threshold    int `json:"threshold"`
}

type RecordTransactionResponse struct {
	Transaction    TransactionResponse `json:"transaction"`
	QuantityOnHand int                 `json:"quantityOnHand"`
	LowStockAlert  *LowStockResponse   `json:"lowStockAlert,omitempty"`
}

func FromRecordResult(r *commands.RecordTransactionResult) RecordTransactionResponse {
	t := r.Transaction
	res := RecordTransactionResponse{
		Transaction: TransactionResponse{
			ID:          t.ID(),
			ProductID:   t.ProductID(),
			Quantity:    t.Quantity(),
			Type:        t.Type().String(),
			Reference:   t.Reference(),
			StockBefore: t.StockBefore(),
			StockAfter:  t.StockAfter(),
			CreatedAt:   t.CreatedAt(),
		},
		QuantityOnHand: r.Stock.QuantityOnHand(),
	}
	if r.LowStock != nil {
		res.LowStockAlert = &LowStockResponse{CurrentStock: r.LowStock.CurrentStock, Threshold: r.LowStock.Threshold}
	}
	return res
}

type StockResponse struct {
	ProductID         uuid.UUID  `json:"productId"`
	Sku               string     `json:"sku"`
	Name              string     `json:"name"`
	CategoryID        *uuid.UUID `json:"categoryId"`
	QuantityOnHand    int        `json:"quantityOnHand"`
	LowStockThreshold int        `json:"lowStockThreshold"`
	IsLow             bool       `json:"isLow"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type AlertResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"productId"`
	Sku          string    `json:"sku,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
	Threshold    int       `json:"threshold"`
	Active       bool      `json:"active"`
	CurrentStock int       `json:"currentStock"`
	Triggered    bool      `json:"triggered"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DailyAnalyticsResponse struct {
	Date              string          `json:"date"`
	Sold              int             `json:"sold"`
	Restocked         int             `json:"restocked"`
	Returned          int             `json:"returned"`
	OpeningStock      int             `json:"openingStock"`
	ClosingStock      int             `json:"closingStock"`
	LowStockCrossings int             `json:"lowStockCrossings"`
	Turnover          decimal.Decimal `json:"turnover"`
}

type ProductAnalyticsResponse struct {
	ProductID         uuid.UUID                `json:"productId"`
	From              string                   `json:"from"`
	To                string                   `json:"to"`
	TotalSales        int                      `json:"totalSales"`
	TotalRestocks     int                      `json:"totalRestocks"`
	TotalReturns      int                      `json:"totalReturns"`
	AverageTurnover   decimal.Decimal          `json:"averageTurnover"`
	MaxTurnover       decimal.Decimal          `json:"maxTurnover"`
	MinTurnover       decimal.Decimal          `json:"minTurnover"`
	DaysOutOfStock    int                      `json:"daysOutOfStock"`
	LowStockIncidents int                      `json:"lowStockIncidents"`
	Days              []DailyAnalyticsResponse `json:"days"`
}

const dateLayout = "2006-01-02"

func FromProductAnalytics(v *queries.ProductAnalyticsView) ProductAnalyticsResponse {
	res := ProductAnalyticsResponse{
		ProductID:         v.ProductID,
		From:              v.From.Format(dateLayout),
		To:                v.To.Format(dateLayout),
		TotalSales:        v.TotalSales,
		TotalRestocks:     v.TotalRestocks,
		TotalReturns:      v.TotalReturns,
		AverageTurnover:   v.AverageTurnover,
		MaxTurnover:       v.MaxTurnover,
		MinTurnover:       v.MinTurnover,
		DaysOutOfStock:    v.DaysOutOfStock,
		LowStockIncidents: v.LowStockIncidents,
		Days:              make([]DailyAnalyticsResponse, len(v.Days)),
	}
	for i, d := range v.Days {
		res.Days[i] = DailyAnalyticsResponse{
			Date:              d.Day.Format(dateLayout),
			Sold:              d.Sold,
			Restocked:         d.Restocked,
			Returned:          d.Returned,
			OpeningStock:      d.OpeningStock,
			ClosingStock:      d.ClosingStock,
			LowStockCrossings: d.LowStockCrossings,
			Turnover:          d.Turnover,
		}
	}
	return res
}

// copier maps views field by field; the names match on purpose.

func FromStockView(v *queries.StockView) StockResponse {
	var res StockResponse
	_ = copier.Copy(&res, v)
	return res
}

func FromStockViews(vs []queries.StockView) []StockResponse {
	res := make([]StockResponse, 0, len(vs))
	_ = copier.Copy(&res, &vs)
	return res
}

func FromTransactionViews(vs []queries.TransactionView) []TransactionResponse {
	res := make([]TransactionResponse, 0, len(vs))
	_ = copier.Copy(&res, &vs)
	return res
}

func FromAlertViews(vs []queries.AlertView) []AlertResponse {
	res := make([]AlertResponse, 0, len(vs))
	_ = copier.Copy(&res, &vs)
	return res
}

func FromStockAlert(a *inventory.StockAlert) AlertResponse {
	return AlertResponse{
		ID:        a.ID(),
		ProductID: a.ProductID(),
		Threshold: a.Threshold(),
		Active:    a.IsActive(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
