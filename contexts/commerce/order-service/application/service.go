package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/order-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/order-service/domain/errors"
	"bazaar/contexts/commerce/order-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) ListOrders(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 10
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !entities.IsValidOrderStatus(filter.Status) {
		return ports.OrderPage{}, domainerrors.ErrInvalidOrderInput
	}
	return s.Repo.ListOrders(ctx, filter)
}

func (s Service) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return entities.Order{}, domainerrors.ErrInvalidOrderInput
	}
	return s.Repo.GetOrder(ctx, strings.TrimSpace(orderID))
}

// UpdateStatus moves an order through its lifecycle. Invalid transitions
// are rejected so a delivered or cancelled order can never be revived.
func (s Service) UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error) {
	if strings.TrimSpace(orderID) == "" || !entities.IsValidOrderStatus(next) {
		return entities.Order{}, domainerrors.ErrInvalidOrderInput
	}

	order, err := s.Repo.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return entities.Order{}, err
	}
	if !entities.CanTransition(order.Status, next) {
		return entities.Order{}, domainerrors.ErrInvalidStatusTransition
	}

	now := s.now()
	if err := s.Repo.UpdateOrderStatus(ctx, order.OrderID, next, now); err != nil {
		return entities.Order{}, err
	}

	resolveLogger(s.Logger).Info("order status updated",
		"event", "order_status_updated",
		"module", "commerce/order-service",
		"layer", "application",
		"order_id", order.OrderID,
		"from", string(order.Status),
		"to", string(next),
	)
	order.Status = next
	order.UpdatedAt = now
	return order, nil
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
