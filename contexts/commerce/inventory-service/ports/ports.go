package ports

import (
	"context"
	"time"

	"bazaar/contexts/commerce/inventory-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Repository interface {
	UpsertStockRecord(ctx context.Context, record entities.StockRecord) error
	GetStockRecord(ctx context.Context, productID string) (entities.StockRecord, error)
	ListStockRecords(ctx context.Context) ([]entities.StockRecord, error)
	// ApplyAdjustment atomically applies the delta and appends the
	// adjustment to the audit trail.
	ApplyAdjustment(ctx context.Context, adjustment entities.Adjustment) (entities.StockRecord, error)
	ListAdjustments(ctx context.Context, productID string) ([]entities.Adjustment, error)
}
