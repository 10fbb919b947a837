package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/inventory-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/inventory-service/domain/errors"
	"bazaar/contexts/commerce/inventory-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type AdjustStockInput struct {
	ProductID string
	Delta     int
	Reason    string
	ActorID   string
}

func (s Service) ListStock(ctx context.Context) ([]entities.StockRecord, error) {
	return s.Repo.ListStockRecords(ctx)
}

func (s Service) GetStock(ctx context.Context, productID string) (entities.StockRecord, error) {
	if strings.TrimSpace(productID) == "" {
		return entities.StockRecord{}, domainerrors.ErrInvalidStockInput
	}
	return s.Repo.GetStockRecord(ctx, strings.TrimSpace(productID))
}

// ListLowStock returns records at or below their reorder threshold.
func (s Service) ListLowStock(ctx context.Context) ([]entities.StockRecord, error) {
	records, err := s.Repo.ListStockRecords(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entities.StockRecord, 0, len(records))
	for _, record := range records {
		if record.IsLowStock() {
			low = append(low, record)
		}
	}
	return low, nil
}

func (s Service) AdjustStock(ctx context.Context, input AdjustStockInput) (entities.StockRecord, error) {
	if strings.TrimSpace(input.ProductID) == "" || input.Delta == 0 {
		return entities.StockRecord{}, domainerrors.ErrInvalidStockInput
	}
	if strings.TrimSpace(input.Reason) == "" {
		return entities.StockRecord{}, domainerrors.ErrInvalidStockInput
	}

	adjustmentID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.StockRecord{}, err
	}
	record, err := s.Repo.ApplyAdjustment(ctx, entities.Adjustment{
		AdjustmentID: adjustmentID,
		ProductID:    strings.TrimSpace(input.ProductID),
		Delta:        input.Delta,
		Reason:       strings.TrimSpace(input.Reason),
		ActorID:      strings.TrimSpace(input.ActorID),
		AppliedAt:    s.now(),
	})
	if err != nil {
		return entities.StockRecord{}, err
	}

	resolveLogger(s.Logger).Info("stock adjusted",
		"event", "stock_adjusted",
		"module", "commerce/inventory-service",
		"layer", "application",
		"product_id", record.ProductID,
		"delta", input.Delta,
		"quantity", record.Quantity,
	)
	return record, nil
}

func (s Service) ListAdjustments(ctx context.Context, productID string) ([]entities.Adjustment, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.ErrInvalidStockInput
	}
	return s.Repo.ListAdjustments(ctx, strings.TrimSpace(productID))
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
