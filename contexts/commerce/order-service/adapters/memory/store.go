package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"bazaar/contexts/commerce/order-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/order-service/domain/errors"
	"bazaar/contexts/commerce/order-service/ports"
)

type Store struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
}

func NewStore() *Store {
	return &Store{orders: map[string]entities.Order{}}
}

func (s *Store) Now() time.Time { return time.Now().UTC() }

func (s *Store) CreateOrder(_ context.Context, order entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.orders {
		if existing.OrderNumber == order.OrderNumber {
			return domainerrors.ErrOrderNumberConflict
		}
	}
	s.orders[order.OrderID] = order
	return nil
}

func (s *Store) GetOrder(_ context.Context, orderID string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *Store) ListOrders(_ context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Order, 0, len(s.orders))
	search := strings.ToLower(filter.Search)
	for _, order := range s.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(order.OrderNumber), search) &&
			!strings.Contains(strings.ToLower(order.CustomerEmail), search) {
			continue
		}
		matched = append(matched, order)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PlacedAt.After(matched[j].PlacedAt)
	})

	page := ports.OrderPage{Total: len(matched)}
	start := (filter.Page - 1) * filter.PerPage
	if start >= len(matched) {
		return page, nil
	}
	end := start + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	page.Items = matched[start:end]
	return page, nil
}

func (s *Store) UpdateOrderStatus(_ context.Context, orderID string, status entities.OrderStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = at
	s.orders[orderID] = order
	return nil
}
