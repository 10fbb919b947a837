package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/catalog/product-service/application"
	"bazaar/contexts/catalog/product-service/domain/entities"
	"bazaar/contexts/catalog/product-service/ports"
	httptransport "bazaar/contexts/catalog/product-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListProductsHandler(ctx context.Context, req httptransport.ListProductsRequest, canEdit bool) (httptransport.ListProductsResponse, error) {
	page, err := h.Service.ListProducts(ctx, ports.ProductFilter{
		Search:  req.Search,
		Status:  entities.ProductStatus(req.Status),
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		return httptransport.ListProductsResponse{}, err
	}

	resp := httptransport.ListProductsResponse{Status: "success"}
	resp.Data.Total = page.Total
	resp.Data.Page = req.Page
	resp.Data.PerPage = req.PerPage
	resp.Data.CanEdit = canEdit
	for _, product := range page.Items {
		resp.Data.Items = append(resp.Data.Items, productPayload(product))
	}
	return resp, nil
}

func (h Handler) GetProductHandler(ctx context.Context, productID string) (httptransport.GetProductResponse, error) {
	product, err := h.Service.GetProduct(ctx, productID)
	if err != nil {
		return httptransport.GetProductResponse{}, err
	}
	return httptransport.GetProductResponse{Status: "success", Data: productPayload(product)}, nil
}

func (h Handler) CreateProductHandler(ctx context.Context, req httptransport.CreateProductRequest) (httptransport.GetProductResponse, error) {
	product, err := h.Service.CreateProduct(ctx, application.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		PriceCents:  req.PriceCents,
		Status:      entities.ProductStatus(req.Status),
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return httptransport.GetProductResponse{}, err
	}
	return httptransport.GetProductResponse{Status: "success", Data: productPayload(product)}, nil
}

func (h Handler) UpdateProductHandler(ctx context.Context, productID string, req httptransport.UpdateProductRequest) (httptransport.GetProductResponse, error) {
	product, err := h.Service.UpdateProduct(ctx, productID, application.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Status:      entities.ProductStatus(req.Status),
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return httptransport.GetProductResponse{}, err
	}
	return httptransport.GetProductResponse{Status: "success", Data: productPayload(product)}, nil
}

func (h Handler) ArchiveProductHandler(ctx context.Context, productID string) error {
	return h.Service.ArchiveProduct(ctx, productID)
}

func productPayload(product entities.Product) httptransport.ProductPayload {
	return httptransport.ProductPayload{
		ProductID:   product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		SKU:         product.SKU,
		PriceCents:  product.PriceCents,
		Status:      string(product.Status),
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
}
