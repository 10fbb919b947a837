package ports

import (
	"context"
	"time"

	"bazaar/contexts/commerce/order-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// OrderFilter narrows and pages the admin order table.
type OrderFilter struct {
	Status  entities.OrderStatus
	Search  string
	Page    int
	PerPage int
}

type OrderPage struct {
	Items []entities.Order
	Total int
}

type Repository interface {
	CreateOrder(ctx context.Context, order entities.Order) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) (OrderPage, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) error
}
