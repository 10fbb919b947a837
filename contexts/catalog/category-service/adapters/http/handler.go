package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/catalog/category-service/application"
	"bazaar/contexts/catalog/category-service/domain/entities"
	httptransport "bazaar/contexts/catalog/category-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListCategoriesHandler(ctx context.Context, canEdit bool) (httptransport.ListCategoriesResponse, error) {
	items, err := h.Service.ListCategories(ctx)
	if err != nil {
		return httptransport.ListCategoriesResponse{}, err
	}
	resp := httptransport.ListCategoriesResponse{Status: "success"}
	resp.Data.CanEdit = canEdit
	for _, category := range items {
		resp.Data.Items = append(resp.Data.Items, categoryPayload(category))
	}
	return resp, nil
}

func (h Handler) GetCategoryHandler(ctx context.Context, categoryID string) (httptransport.GetCategoryResponse, error) {
	category, err := h.Service.GetCategory(ctx, categoryID)
	if err != nil {
		return httptransport.GetCategoryResponse{}, err
	}
	return httptransport.GetCategoryResponse{Status: "success", Data: categoryPayload(category)}, nil
}

func (h Handler) CreateCategoryHandler(ctx context.Context, req httptransport.CategoryRequest) (httptransport.GetCategoryResponse, error) {
	category, err := h.Service.CreateCategory(ctx, application.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return httptransport.GetCategoryResponse{}, err
	}
	return httptransport.GetCategoryResponse{Status: "success", Data: categoryPayload(category)}, nil
}

func (h Handler) UpdateCategoryHandler(ctx context.Context, categoryID string, req httptransport.CategoryRequest) (httptransport.GetCategoryResponse, error) {
	category, err := h.Service.UpdateCategory(ctx, categoryID, application.CategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return httptransport.GetCategoryResponse{}, err
	}
	return httptransport.GetCategoryResponse{Status: "success", Data: categoryPayload(category)}, nil
}

func (h Handler) DeleteCategoryHandler(ctx context.Context, categoryID string) error {
	return h.Service.DeleteCategory(ctx, categoryID)
}

func categoryPayload(category entities.Category) httptransport.CategoryPayload {
	return httptransport.CategoryPayload{
		CategoryID:  category.CategoryID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		ParentID:    category.ParentID,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   category.UpdatedAt.Format(time.RFC3339),
	}
}
