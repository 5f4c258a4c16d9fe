package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"

	"commerce-ledger/internal/domain/inventory"
)

// LowStockNotifier receives events after the stock change is committed.
// Implementations must not block the caller and report failures themselves.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, event inventory.LowStockEvent)
}
