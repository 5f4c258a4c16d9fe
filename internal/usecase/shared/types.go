package shared

import (
	"time"

	"commerce-ledger/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
	Status  string
}

// CartLine is a cart line as submitted by the client; the category is looked up server side.
type CartLine struct {
	ProductID uuid.UUID
	LineTotal decimal.Decimal
}

// ResolveCartItems attaches categories to cart lines. Products missing from
// categories keep a nil category and can only match product scopes.
func ResolveCartItems(lines []CartLine, categories map[uuid.UUID]*uuid.UUID) []coupon.CartItem {
	if len(lines) == 0 {
		return nil
	}
	items := make([]coupon.CartItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, coupon.CartItem{
			ProductID:  l.ProductID,
			CategoryID: categories[l.ProductID],
			LineTotal:  l.LineTotal,
		})
	}
	return items
}

func CartProductIDs(lines []CartLine) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}
