package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	inventory "bazaar/contexts/commerce/inventory-service"
	"bazaar/contexts/commerce/inventory-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/inventory-service/domain/errors"
	httptransport "bazaar/contexts/commerce/inventory-service/transport/http"
)

func seededInventoryModule(t *testing.T) inventory.Module {
	t.Helper()
	module := inventory.NewInMemoryModule(nil)
	records := []entities.StockRecord{
		{ProductID: "prod-1", ProductName: "Mug", SKU: "MUG-1", Quantity: 40, LowStockThreshold: 10, UpdatedAt: time.Now().UTC()},
		{ProductID: "prod-2", ProductName: "Poster", SKU: "POS-1", Quantity: 3, LowStockThreshold: 5, UpdatedAt: time.Now().UTC()},
	}
	for _, record := range records {
		if err := module.Store.UpsertStockRecord(context.Background(), record); err != nil {
			t.Fatalf("seed stock failed: %v", err)
		}
	}
	return module
}

func TestInventoryListAndLowStockFilter(t *testing.T) {
	module := seededInventoryModule(t)
	ctx := context.Background()

	resp, err := module.Handler.ListStockHandler(ctx, false, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Data.Items) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Data.Items))
	}

	resp, err = module.Handler.ListStockHandler(ctx, true, false)
	if err != nil {
		t.Fatalf("low stock list failed: %v", err)
	}
	if len(resp.Data.Items) != 1 || resp.Data.Items[0].ProductID != "prod-2" {
		t.Fatalf("unexpected low stock items %+v", resp.Data.Items)
	}
	if !resp.Data.Items[0].LowStock {
		t.Fatal("low stock flag not set")
	}
}

func TestInventoryAdjustAppliesDeltaAndRecordsAudit(t *testing.T) {
	module := seededInventoryModule(t)
	ctx := context.Background()

	resp, err := module.Handler.AdjustStockHandler(ctx, "prod-1", "user-admin", httptransport.AdjustStockRequest{
		Delta: -15, Reason: "damaged in transit",
	})
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if resp.Data.Quantity != 25 {
		t.Fatalf("expected quantity 25, got %d", resp.Data.Quantity)
	}

	audit, err := module.Handler.ListAdjustmentsHandler(ctx, "prod-1")
	if err != nil {
		t.Fatalf("list adjustments failed: %v", err)
	}
	if len(audit.Data.Items) != 1 {
		t.Fatalf("expected 1 adjustment, got %d", len(audit.Data.Items))
	}
	entry := audit.Data.Items[0]
	if entry.Delta != -15 || entry.Reason != "damaged in transit" || entry.ActorID != "user-admin" {
		t.Fatalf("unexpected adjustment %+v", entry)
	}
}

func TestInventoryAdjustRejectsNegativeResult(t *testing.T) {
	module := seededInventoryModule(t)
	_, err := module.Handler.AdjustStockHandler(context.Background(), "prod-2", "user-admin", httptransport.AdjustStockRequest{
		Delta: -10, Reason: "oversold",
	})
	if !errors.Is(err, domainerrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	// The failed adjustment must not leave an audit entry.
	audit, err := module.Handler.ListAdjustmentsHandler(context.Background(), "prod-2")
	if err != nil {
		t.Fatalf("list adjustments failed: %v", err)
	}
	if len(audit.Data.Items) != 0 {
		t.Fatalf("rejected adjustment was recorded: %+v", audit.Data.Items)
	}
}

func TestInventoryAdjustValidation(t *testing.T) {
	module := seededInventoryModule(t)
	ctx := context.Background()

	_, err := module.Handler.AdjustStockHandler(ctx, "prod-1", "user-admin", httptransport.AdjustStockRequest{Delta: 0, Reason: "noop"})
	if !errors.Is(err, domainerrors.ErrInvalidStockInput) {
		t.Fatalf("zero delta: expected invalid input, got %v", err)
	}
	_, err = module.Handler.AdjustStockHandler(ctx, "prod-1", "user-admin", httptransport.AdjustStockRequest{Delta: 5})
	if !errors.Is(err, domainerrors.ErrInvalidStockInput) {
		t.Fatalf("missing reason: expected invalid input, got %v", err)
	}
	_, err = module.Handler.AdjustStockHandler(ctx, "missing", "user-admin", httptransport.AdjustStockRequest{Delta: 5, Reason: "restock"})
	if !errors.Is(err, domainerrors.ErrStockRecordNotFound) {
		t.Fatalf("unknown product: expected not found, got %v", err)
	}
}
