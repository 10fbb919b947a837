package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/inventory-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/inventory-service/domain/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) Now() time.Time { return time.Now().UTC() }

func (r *Repository) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (r *Repository) UpsertStockRecord(ctx context.Context, record entities.StockRecord) error {
	row := stockModelFromEntity(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).
		Create(&row).
		Error
}

func (r *Repository) GetStockRecord(ctx context.Context, productID string) (entities.StockRecord, error) {
	var row stockModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", strings.TrimSpace(productID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.StockRecord{}, domainerrors.ErrStockRecordNotFound
		}
		return entities.StockRecord{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListStockRecords(ctx context.Context) ([]entities.StockRecord, error) {
	var rows []stockModel
	if err := r.db.WithContext(ctx).Order("product_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.StockRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// ApplyAdjustment locks the stock row, applies the delta, and appends the
// adjustment in one transaction so concurrent adjustments cannot interleave.
func (r *Repository) ApplyAdjustment(ctx context.Context, adjustment entities.Adjustment) (entities.StockRecord, error) {
	var applied entities.StockRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row stockModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", strings.TrimSpace(adjustment.ProductID)).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrStockRecordNotFound
			}
			return err
		}

		next := row.Quantity + adjustment.Delta
		if next < 0 {
			return domainerrors.ErrInsufficientStock
		}

		result := tx.Model(&stockModel{}).
			Where("product_id = ?", row.ProductID).
			Updates(map[string]any{
				"quantity":   next,
				"updated_at": adjustment.AppliedAt,
			})
		if result.Error != nil {
			return result.Error
		}

		entry := adjustmentModelFromEntity(adjustment)
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		row.Quantity = next
		row.UpdatedAt = adjustment.AppliedAt
		applied = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.StockRecord{}, err
	}
	return applied, nil
}

func (r *Repository) ListAdjustments(ctx context.Context, productID string) ([]entities.Adjustment, error) {
	var rows []adjustmentModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", strings.TrimSpace(productID)).
		Order("applied_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Adjustment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

type stockModel struct {
	ProductID         string    `gorm:"column:product_id;primaryKey"`
	ProductName       string    `gorm:"column:product_name"`
	SKU               string    `gorm:"column:sku"`
	Quantity          int       `gorm:"column:quantity"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold"`
	Location          string    `gorm:"column:location"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (stockModel) TableName() string { return "stock_records" }

func stockModelFromEntity(record entities.StockRecord) stockModel {
	return stockModel{
		ProductID:         strings.TrimSpace(record.ProductID),
		ProductName:       record.ProductName,
		SKU:               record.SKU,
		Quantity:          record.Quantity,
		LowStockThreshold: record.LowStockThreshold,
		Location:          record.Location,
		UpdatedAt:         record.UpdatedAt,
	}
}

func (m stockModel) toEntity() entities.StockRecord {
	return entities.StockRecord{
		ProductID:         m.ProductID,
		ProductName:       m.ProductName,
		SKU:               m.SKU,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		Location:          m.Location,
		UpdatedAt:         m.UpdatedAt,
	}
}

type adjustmentModel struct {
	AdjustmentID string    `gorm:"column:adjustment_id;primaryKey"`
	ProductID    string    `gorm:"column:product_id;index"`
	Delta        int       `gorm:"column:delta"`
	Reason       string    `gorm:"column:reason"`
	ActorID      string    `gorm:"column:actor_id"`
	AppliedAt    time.Time `gorm:"column:applied_at"`
}

func (adjustmentModel) TableName() string { return "stock_adjustments" }

func adjustmentModelFromEntity(adjustment entities.Adjustment) adjustmentModel {
	return adjustmentModel{
		AdjustmentID: adjustment.AdjustmentID,
		ProductID:    strings.TrimSpace(adjustment.ProductID),
		Delta:        adjustment.Delta,
		Reason:       adjustment.Reason,
		ActorID:      adjustment.ActorID,
		AppliedAt:    adjustment.AppliedAt,
	}
}

func (m adjustmentModel) toEntity() entities.Adjustment {
	return entities.Adjustment{
		AdjustmentID: m.AdjustmentID,
		ProductID:    m.ProductID,
		Delta:        m.Delta,
		Reason:       m.Reason,
		ActorID:      m.ActorID,
		AppliedAt:    m.AppliedAt,
	}
}
