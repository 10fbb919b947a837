package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bazaar/contexts/commerce/inventory-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/inventory-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	records     map[string]entities.StockRecord
	adjustments map[string][]entities.Adjustment
}

func NewStore() *Store {
	return &Store{
		records:     map[string]entities.StockRecord{},
		adjustments: map[string][]entities.Adjustment{},
	}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) UpsertStockRecord(_ context.Context, record entities.StockRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ProductID] = record
	return nil
}

func (s *Store) GetStockRecord(_ context.Context, productID string) (entities.StockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[productID]
	if !ok {
		return entities.StockRecord{}, domainerrors.ErrStockRecordNotFound
	}
	return record, nil
}

func (s *Store) ListStockRecords(_ context.Context) ([]entities.StockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.StockRecord, 0, len(s.records))
	for _, record := range s.records {
		items = append(items, record)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
	return items, nil
}

func (s *Store) ApplyAdjustment(_ context.Context, adjustment entities.Adjustment) (entities.StockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[adjustment.ProductID]
	if !ok {
		return entities.StockRecord{}, domainerrors.ErrStockRecordNotFound
	}
	next := record.Quantity + adjustment.Delta
	if next < 0 {
		return entities.StockRecord{}, domainerrors.ErrInsufficientStock
	}
	record.Quantity = next
	record.UpdatedAt = adjustment.AppliedAt
	s.records[adjustment.ProductID] = record
	s.adjustments[adjustment.ProductID] = append(s.adjustments[adjustment.ProductID], adjustment)
	return record, nil
}

func (s *Store) ListAdjustments(_ context.Context, productID string) ([]entities.Adjustment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := append([]entities.Adjustment(nil), s.adjustments[productID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].AppliedAt.After(items[j].AppliedAt) })
	return items, nil
}
