package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"commerce-ledger/internal/pkg/errs"
)

const (
	MaxAnalyticsDays = 366
	turnoverScale    = 4
)

var (
	ErrAnalyticsRangeReversed = errs.NewValidation("analytics range start must not be after its end")
	ErrAnalyticsRangeTooWide  = errs.NewValidation("analytics range must not exceed 366 days")
)

func (q *inventoryQueriesImpl) ProductAnalytics(ctx context.Context, productID uuid.UUID, from, to time.Time) (*ProductAnalyticsView, error) {
	from, to = utcDay(from), utcDay(to)
	if from.After(to) {
		return nil, ErrAnalyticsRangeReversed
	}
	until := to.AddDate(0, 0, 1)
	if until.Sub(from) > MaxAnalyticsDays*24*time.Hour {
		return nil, ErrAnalyticsRangeTooWide
	}

	if _, err := q.GetStock(ctx, productID); err != nil {
		return nil, err
	}

	days, err := q.readStore.DailyMovements(ctx, productID, from, until)
	if err != nil {
		return nil, err
	}
	view := SummarizeMovements(days)
	view.ProductID = productID
	view.From, view.To = from, to
	return view, nil
}

// SummarizeMovements folds daily aggregates into range totals. A day's
// turnover is units sold over the mean of its opening and closing stock.
func SummarizeMovements(days []DailyMovementView) *ProductAnalyticsView {
	view := &ProductAnalyticsView{
		AverageTurnover: decimal.Zero,
		MaxTurnover:     decimal.Zero,
		MinTurnover:     decimal.Zero,
		Days:            make([]DailyAnalyticsView, 0, len(days)),
	}
	if len(days) == 0 {
		return view
	}

	sum := decimal.Zero
	for i, d := range days {
		turnover := dailyTurnover(d)
		view.Days = append(view.Days, DailyAnalyticsView{DailyMovementView: d, Turnover: turnover})

		view.TotalSales += d.Sold
		view.TotalRestocks += d.Restocked
		view.TotalReturns += d.Returned
		view.LowStockIncidents += d.LowStockCrossings
		if d.ClosingStock == 0 {
			view.DaysOutOfStock++
		}

		sum = sum.Add(turnover)
		if i == 0 {
			view.MaxTurnover, view.MinTurnover = turnover, turnover
			continue
		}
		view.MaxTurnover = decimal.Max(view.MaxTurnover, turnover)
		view.MinTurnover = decimal.Min(view.MinTurnover, turnover)
	}
	view.AverageTurnover = sum.DivRound(decimal.NewFromInt(int64(len(days))), turnoverScale)
	return view
}

func dailyTurnover(d DailyMovementView) decimal.Decimal {
	stockSum := d.OpeningStock + d.ClosingStock
	if stockSum == 0 {
		return decimal.Zero
	}
	// sold / ((opening+closing)/2)
	return decimal.NewFromInt(int64(2 * d.Sold)).DivRound(decimal.NewFromInt(int64(stockSum)), turnoverScale)
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
