package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/catalog/product-service/domain/entities"
	domainerrors "bazaar/contexts/catalog/product-service/domain/errors"
	"bazaar/contexts/catalog/product-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateProduct(ctx context.Context, product entities.Product) error {
	row := productModelFromEntity(product)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrSKUConflict
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product entities.Product) error {
	result := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("product_id = ?", strings.TrimSpace(product.ProductID)).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"price_cents": product.PriceCents,
			"status":      string(product.Status),
			"category_id": product.CategoryID,
			"updated_at":  product.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	return nil
}

func (r *Repository) GetProduct(ctx context.Context, productID string) (entities.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", strings.TrimSpace(productID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Product{}, domainerrors.ErrProductNotFound
		}
		return entities.Product{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListProducts(ctx context.Context, filter ports.ProductFilter) (ports.ProductPage, error) {
	tx := r.db.WithContext(ctx).Model(&productModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ports.ProductPage{}, err
	}

	var rows []productModel
	err := tx.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return ports.ProductPage{}, err
	}

	page := ports.ProductPage{Total: int(total)}
	for _, row := range rows {
		page.Items = append(page.Items, row.toEntity())
	}
	return page, nil
}

func (r *Repository) ArchiveProduct(ctx context.Context, productID string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("product_id = ?", strings.TrimSpace(productID)).
		Updates(map[string]any{
			"status":     string(entities.ProductStatusArchived),
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	return nil
}

type productModel struct {
	ProductID   string    `gorm:"column:product_id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	SKU         string    `gorm:"column:sku;uniqueIndex"`
	PriceCents  int64     `gorm:"column:price_cents"`
	Status      string    `gorm:"column:status"`
	CategoryID  string    `gorm:"column:category_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

func productModelFromEntity(product entities.Product) productModel {
	return productModel{
		ProductID:   strings.TrimSpace(product.ProductID),
		Name:        product.Name,
		Description: product.Description,
		SKU:         product.SKU,
		PriceCents:  product.PriceCents,
		Status:      string(product.Status),
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func (m productModel) toEntity() entities.Product {
	return entities.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Description: m.Description,
		SKU:         m.SKU,
		PriceCents:  m.PriceCents,
		Status:      entities.ProductStatus(m.Status),
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
