package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/order-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/order-service/domain/errors"
	"bazaar/contexts/commerce/order-service/ports"

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

func (r *Repository) CreateOrder(ctx context.Context, order entities.Order) error {
	row, err := orderModelFromEntity(order)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrOrderNumberConflict
		}
		return err
	}
	return nil
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	var row orderModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", strings.TrimSpace(orderID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Order{}, domainerrors.ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListOrders(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	tx := r.db.WithContext(ctx).Model(&orderModel{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(order_number) LIKE ? OR LOWER(customer_email) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ports.OrderPage{}, err
	}

	var rows []orderModel
	err := tx.Order("placed_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return ports.OrderPage{}, err
	}

	page := ports.OrderPage{Total: int(total)}
	for _, row := range rows {
		order, err := row.toEntity()
		if err != nil {
			return ports.OrderPage{}, err
		}
		page.Items = append(page.Items, order)
	}
	return page, nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("order_id = ?", strings.TrimSpace(orderID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}
	return nil
}

type orderModel struct {
	OrderID       string    `gorm:"column:order_id;primaryKey"`
	OrderNumber   string    `gorm:"column:order_number;uniqueIndex"`
	CustomerEmail string    `gorm:"column:customer_email"`
	Status        string    `gorm:"column:status"`
	TotalCents    int64     `gorm:"column:total_cents"`
	Items         []byte    `gorm:"column:items;type:jsonb"`
	PlacedAt      time.Time `gorm:"column:placed_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func orderModelFromEntity(order entities.Order) (orderModel, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return orderModel{}, err
	}
	return orderModel{
		OrderID:       strings.TrimSpace(order.OrderID),
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		Status:        string(order.Status),
		TotalCents:    order.TotalCents,
		Items:         items,
		PlacedAt:      order.PlacedAt,
		UpdatedAt:     order.UpdatedAt,
	}, nil
}

func (m orderModel) toEntity() (entities.Order, error) {
	var items []entities.OrderItem
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return entities.Order{}, err
		}
	}
	return entities.Order{
		OrderID:       m.OrderID,
		OrderNumber:   m.OrderNumber,
		CustomerEmail: m.CustomerEmail,
		Status:        entities.OrderStatus(m.Status),
		TotalCents:    m.TotalCents,
		Items:         items,
		PlacedAt:      m.PlacedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
