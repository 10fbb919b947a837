package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/commerce/order-service/application"
	"bazaar/contexts/commerce/order-service/domain/entities"
	"bazaar/contexts/commerce/order-service/ports"
	httptransport "bazaar/contexts/commerce/order-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListOrdersHandler(ctx context.Context, req httptransport.ListOrdersRequest, canEdit bool) (httptransport.ListOrdersResponse, error) {
	page, err := h.Service.ListOrders(ctx, ports.OrderFilter{
		Status:  entities.OrderStatus(req.Status),
		Search:  req.Search,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		return httptransport.ListOrdersResponse{}, err
	}

	resp := httptransport.ListOrdersResponse{Status: "success"}
	resp.Data.Total = page.Total
	resp.Data.Page = req.Page
	resp.Data.PerPage = req.PerPage
	resp.Data.CanEdit = canEdit
	for _, order := range page.Items {
		resp.Data.Items = append(resp.Data.Items, orderPayload(order))
	}
	return resp, nil
}

func (h Handler) GetOrderHandler(ctx context.Context, orderID string) (httptransport.GetOrderResponse, error) {
	order, err := h.Service.GetOrder(ctx, orderID)
	if err != nil {
		return httptransport.GetOrderResponse{}, err
	}
	return httptransport.GetOrderResponse{Status: "success", Data: orderPayload(order)}, nil
}

func (h Handler) UpdateOrderStatusHandler(ctx context.Context, orderID string, req httptransport.UpdateOrderStatusRequest) (httptransport.GetOrderResponse, error) {
	order, err := h.Service.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))
	if err != nil {
		return httptransport.GetOrderResponse{}, err
	}
	return httptransport.GetOrderResponse{Status: "success", Data: orderPayload(order)}, nil
}

func orderPayload(order entities.Order) httptransport.OrderPayload {
	payload := httptransport.OrderPayload{
		OrderID:       order.OrderID,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		Status:        string(order.Status),
		TotalCents:    order.TotalCents,
		PlacedAt:      order.PlacedAt.Format(time.RFC3339),
		UpdatedAt:     order.UpdatedAt.Format(time.RFC3339),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, httptransport.OrderItemPayload{
			SKU:            item.SKU,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return payload
}
