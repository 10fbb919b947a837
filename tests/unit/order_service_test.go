package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	order "bazaar/contexts/commerce/order-service"
	"bazaar/contexts/commerce/order-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/order-service/domain/errors"
	httptransport "bazaar/contexts/commerce/order-service/transport/http"
)

func seededOrderModule(t *testing.T) order.Module {
	t.Helper()
	module := order.NewInMemoryModule(nil)
	placed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	orders := []entities.Order{
		{
			OrderID: "ord-1", OrderNumber: "SO-1001", CustomerEmail: "ann@example.com",
			Status: entities.OrderStatusPending, TotalCents: 4500,
			Items:    []entities.OrderItem{{SKU: "MUG-1", Name: "Mug", Quantity: 3, UnitPriceCents: 1500}},
			PlacedAt: placed, UpdatedAt: placed,
		},
		{
			OrderID: "ord-2", OrderNumber: "SO-1002", CustomerEmail: "bob@example.com",
			Status: entities.OrderStatusShipped, TotalCents: 900,
			PlacedAt: placed.Add(time.Hour), UpdatedAt: placed.Add(time.Hour),
		},
	}
	for _, o := range orders {
		if err := module.Store.CreateOrder(context.Background(), o); err != nil {
			t.Fatalf("seed order failed: %v", err)
		}
	}
	return module
}

func TestOrderListFiltersByStatusAndSearch(t *testing.T) {
	module := seededOrderModule(t)
	ctx := context.Background()

	resp, err := module.Handler.ListOrdersHandler(ctx, httptransport.ListOrdersRequest{Status: "pending"}, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Items[0].OrderNumber != "SO-1001" {
		t.Fatalf("unexpected filtered orders %+v", resp.Data)
	}

	resp, err = module.Handler.ListOrdersHandler(ctx, httptransport.ListOrdersRequest{Search: "bob@"}, false)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Items[0].OrderID != "ord-2" {
		t.Fatalf("unexpected search result %+v", resp.Data)
	}

	_, err = module.Handler.ListOrdersHandler(ctx, httptransport.ListOrdersRequest{Status: "refunded"}, false)
	if !errors.Is(err, domainerrors.ErrInvalidOrderInput) {
		t.Fatalf("unknown status filter: expected invalid input, got %v", err)
	}
}

func TestOrderStatusLifecycle(t *testing.T) {
	module := seededOrderModule(t)
	ctx := context.Background()

	for _, next := range []string{"processing", "shipped", "delivered"} {
		resp, err := module.Handler.UpdateOrderStatusHandler(ctx, "ord-1", httptransport.UpdateOrderStatusRequest{Status: next})
		if err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
		if resp.Data.Status != next {
			t.Fatalf("expected status %s, got %s", next, resp.Data.Status)
		}
	}

	// Delivered is terminal.
	_, err := module.Handler.UpdateOrderStatusHandler(ctx, "ord-1", httptransport.UpdateOrderStatusRequest{Status: "pending"})
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestOrderCancellationOnlyBeforeShipment(t *testing.T) {
	module := seededOrderModule(t)
	ctx := context.Background()

	if _, err := module.Handler.UpdateOrderStatusHandler(ctx, "ord-1", httptransport.UpdateOrderStatusRequest{Status: "cancelled"}); err != nil {
		t.Fatalf("cancel pending order failed: %v", err)
	}

	_, err := module.Handler.UpdateOrderStatusHandler(ctx, "ord-2", httptransport.UpdateOrderStatusRequest{Status: "cancelled"})
	if !errors.Is(err, domainerrors.ErrInvalidStatusTransition) {
		t.Fatalf("cancel shipped order: expected invalid transition, got %v", err)
	}
}

func TestOrderTransitionRejectsUnknownStatus(t *testing.T) {
	module := seededOrderModule(t)
	_, err := module.Handler.UpdateOrderStatusHandler(context.Background(), "ord-1", httptransport.UpdateOrderStatusRequest{Status: "teleported"})
	if !errors.Is(err, domainerrors.ErrInvalidOrderInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestOrderGetUnknownID(t *testing.T) {
	module := seededOrderModule(t)
	_, err := module.Handler.GetOrderHandler(context.Background(), "missing")
	if !errors.Is(err, domainerrors.ErrOrderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
