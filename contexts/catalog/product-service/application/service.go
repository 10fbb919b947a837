package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/catalog/product-service/domain/entities"
	domainerrors "bazaar/contexts/catalog/product-service/domain/errors"
	"bazaar/contexts/catalog/product-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type CreateProductInput struct {
	Name        string
	Description string
	SKU         string
	PriceCents  int64
	Status      entities.ProductStatus
	CategoryID  string
}

type UpdateProductInput struct {
	Name        string
	Description string
	PriceCents  int64
	Status      entities.ProductStatus
	CategoryID  string
}

func (s Service) ListProducts(ctx context.Context, filter ports.ProductFilter) (ports.ProductPage, error) {
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
	if filter.Status != "" && !entities.IsValidProductStatus(filter.Status) {
		return ports.ProductPage{}, domainerrors.ErrInvalidProductInput
	}
	return s.Repo.ListProducts(ctx, filter)
}

func (s Service) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}
	return s.Repo.GetProduct(ctx, strings.TrimSpace(productID))
}

func (s Service) CreateProduct(ctx context.Context, input CreateProductInput) (entities.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.SKU) == "" {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}
	if input.PriceCents < 0 {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}
	if input.Status == "" {
		input.Status = entities.ProductStatusDraft
	}
	if !entities.IsValidProductStatus(input.Status) {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}

	productID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	now := s.now()
	product := entities.Product{
		ProductID:   productID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		SKU:         strings.TrimSpace(input.SKU),
		PriceCents:  input.PriceCents,
		Status:      input.Status,
		CategoryID:  strings.TrimSpace(input.CategoryID),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return entities.Product{}, err
	}

	resolveLogger(s.Logger).Info("product created",
		"event", "product_created",
		"module", "catalog/product-service",
		"layer", "application",
		"product_id", product.ProductID,
		"sku", product.SKU,
	)
	return product, nil
}

func (s Service) UpdateProduct(ctx context.Context, productID string, input UpdateProductInput) (entities.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}
	if strings.TrimSpace(input.Name) == "" || input.PriceCents < 0 {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}
	if !entities.IsValidProductStatus(input.Status) {
		return entities.Product{}, domainerrors.ErrInvalidProductInput
	}

	current, err := s.Repo.GetProduct(ctx, strings.TrimSpace(productID))
	if err != nil {
		return entities.Product{}, err
	}
	current.Name = strings.TrimSpace(input.Name)
	current.Description = strings.TrimSpace(input.Description)
	current.PriceCents = input.PriceCents
	current.Status = input.Status
	current.CategoryID = strings.TrimSpace(input.CategoryID)
	current.UpdatedAt = s.now()

	if err := s.Repo.UpdateProduct(ctx, current); err != nil {
		return entities.Product{}, err
	}
	return current, nil
}

// ArchiveProduct soft-deletes: the row stays for order history but drops
// out of active listings.
func (s Service) ArchiveProduct(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return domainerrors.ErrInvalidProductInput
	}
	return s.Repo.ArchiveProduct(ctx, strings.TrimSpace(productID), s.now())
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
