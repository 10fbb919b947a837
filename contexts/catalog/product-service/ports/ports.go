package ports

import (
	"context"
	"time"

	"bazaar/contexts/catalog/product-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// ProductFilter narrows and pages the admin product table.
type ProductFilter struct {
	Search  string
	Status  entities.ProductStatus
	Page    int
	PerPage int
}

// ProductPage is one page of the product table plus the unpaged total.
type ProductPage struct {
	Items []entities.Product
	Total int
}

type Repository interface {
	CreateProduct(ctx context.Context, product entities.Product) error
	UpdateProduct(ctx context.Context, product entities.Product) error
	GetProduct(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) (ProductPage, error)
	ArchiveProduct(ctx context.Context, productID string, at time.Time) error
}
