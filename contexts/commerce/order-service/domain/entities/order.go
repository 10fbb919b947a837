package entities

import "time"

// OrderStatus is the fulfillment lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func IsValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an order may move from one status to the
// next. Delivered and cancelled are terminal; cancellation is only allowed
// before shipment.
func CanTransition(from OrderStatus, to OrderStatus) bool {
	switch from {
	case OrderStatusPending:
		return to == OrderStatusProcessing || to == OrderStatusCancelled
	case OrderStatusProcessing:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	default:
		return false
	}
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	SKU            string
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// Order is one customer order as seen from the admin console.
type Order struct {
	OrderID       string
	OrderNumber   string
	CustomerEmail string
	Status        OrderStatus
	TotalCents    int64
	Items         []OrderItem
	PlacedAt      time.Time
	UpdatedAt     time.Time
}
