package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/commerce/inventory-service/application"
	"bazaar/contexts/commerce/inventory-service/domain/entities"
	httptransport "bazaar/contexts/commerce/inventory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListStockHandler(ctx context.Context, lowOnly bool, canEdit bool) (httptransport.ListStockResponse, error) {
	var (
		items []entities.StockRecord
		err   error
	)
	if lowOnly {
		items, err = h.Service.ListLowStock(ctx)
	} else {
		items, err = h.Service.ListStock(ctx)
	}
	if err != nil {
		return httptransport.ListStockResponse{}, err
	}

	resp := httptransport.ListStockResponse{Status: "success"}
	resp.Data.CanEdit = canEdit
	for _, record := range items {
		resp.Data.Items = append(resp.Data.Items, stockPayload(record))
	}
	return resp, nil
}

func (h Handler) GetStockHandler(ctx context.Context, productID string) (httptransport.GetStockResponse, error) {
	record, err := h.Service.GetStock(ctx, productID)
	if err != nil {
		return httptransport.GetStockResponse{}, err
	}
	return httptransport.GetStockResponse{Status: "success", Data: stockPayload(record)}, nil
}

func (h Handler) AdjustStockHandler(ctx context.Context, productID string, actorID string, req httptransport.AdjustStockRequest) (httptransport.GetStockResponse, error) {
	record, err := h.Service.AdjustStock(ctx, application.AdjustStockInput{
		ProductID: productID,
		Delta:     req.Delta,
		Reason:    req.Reason,
		ActorID:   actorID,
	})
	if err != nil {
		return httptransport.GetStockResponse{}, err
	}
	return httptransport.GetStockResponse{Status: "success", Data: stockPayload(record)}, nil
}

func (h Handler) ListAdjustmentsHandler(ctx context.Context, productID string) (httptransport.ListAdjustmentsResponse, error) {
	items, err := h.Service.ListAdjustments(ctx, productID)
	if err != nil {
		return httptransport.ListAdjustmentsResponse{}, err
	}
	resp := httptransport.ListAdjustmentsResponse{Status: "success"}
	for _, adjustment := range items {
		resp.Data.Items = append(resp.Data.Items, httptransport.AdjustmentPayload{
			AdjustmentID: adjustment.AdjustmentID,
			ProductID:    adjustment.ProductID,
			Delta:        adjustment.Delta,
			Reason:       adjustment.Reason,
			ActorID:      adjustment.ActorID,
			AppliedAt:    adjustment.AppliedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func stockPayload(record entities.StockRecord) httptransport.StockPayload {
	return httptransport.StockPayload{
		ProductID:         record.ProductID,
		ProductName:       record.ProductName,
		SKU:               record.SKU,
		Quantity:          record.Quantity,
		LowStockThreshold: record.LowStockThreshold,
		Location:          record.Location,
		LowStock:          record.IsLowStock(),
		UpdatedAt:         record.UpdatedAt.Format(time.RFC3339),
	}
}
