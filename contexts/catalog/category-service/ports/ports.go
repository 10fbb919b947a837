package ports

import (
	"context"
	"time"

	"bazaar/contexts/catalog/category-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Repository interface {
	CreateCategory(ctx context.Context, category entities.Category) error
	UpdateCategory(ctx context.Context, category entities.Category) error
	GetCategory(ctx context.Context, categoryID string) (entities.Category, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
