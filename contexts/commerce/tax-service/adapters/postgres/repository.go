package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/tax-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/tax-service/domain/errors"
	"bazaar/contexts/commerce/tax-service/ports"

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

func (r *Repository) CreateTaxRule(ctx context.Context, rule entities.TaxRule) error {
	row, err := taxRuleModelFromEntity(rule)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateTaxRule(ctx context.Context, rule entities.TaxRule) error {
	products, err := json.Marshal(rule.ApplicableProducts)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&taxRuleModel{}).
		Where("rule_id = ?", strings.TrimSpace(rule.RuleID)).
		Updates(map[string]any{
			"name":                rule.Name,
			"description":         rule.Description,
			"rate":                rule.Rate,
			"tax_type":            string(rule.TaxType),
			"is_inclusive":        rule.IsInclusive,
			"is_active":           rule.IsActive,
			"applicable_products": products,
			"priority":            rule.Priority,
			"updated_at":          rule.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaxRuleNotFound
	}
	return nil
}

func (r *Repository) GetTaxRule(ctx context.Context, ruleID string) (entities.TaxRule, error) {
	var row taxRuleModel
	err := r.db.WithContext(ctx).
		Where("rule_id = ?", strings.TrimSpace(ruleID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TaxRule{}, domainerrors.ErrTaxRuleNotFound
		}
		return entities.TaxRule{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListTaxRules(ctx context.Context, filter ports.TaxRuleFilter) (ports.TaxRulePage, error) {
	tx := r.db.WithContext(ctx).Model(&taxRuleModel{})
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return ports.TaxRulePage{}, err
	}

	var rows []taxRuleModel
	err := tx.Order("priority DESC, name ASC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).
		Error
	if err != nil {
		return ports.TaxRulePage{}, err
	}

	page := ports.TaxRulePage{Total: int(total)}
	for _, row := range rows {
		rule, err := row.toEntity()
		if err != nil {
			return ports.TaxRulePage{}, err
		}
		page.Items = append(page.Items, rule)
	}
	return page, nil
}

func (r *Repository) ListActiveRulesByPriority(ctx context.Context) ([]entities.TaxRule, error) {
	var rows []taxRuleModel
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.TaxRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, rule)
	}
	return items, nil
}

func (r *Repository) DeleteTaxRule(ctx context.Context, ruleID string) error {
	result := r.db.WithContext(ctx).
		Where("rule_id = ?", strings.TrimSpace(ruleID)).
		Delete(&taxRuleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTaxRuleNotFound
	}
	return nil
}

type taxRuleModel struct {
	RuleID             string    `gorm:"column:rule_id;primaryKey"`
	Name               string    `gorm:"column:name"`
	Description        string    `gorm:"column:description"`
	Rate               int64     `gorm:"column:rate"`
	TaxType            string    `gorm:"column:tax_type"`
	IsInclusive        bool      `gorm:"column:is_inclusive"`
	IsActive           bool      `gorm:"column:is_active"`
	ApplicableProducts []byte    `gorm:"column:applicable_products;type:jsonb"`
	Priority           int       `gorm:"column:priority"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (taxRuleModel) TableName() string { return "tax_rules" }

func taxRuleModelFromEntity(rule entities.TaxRule) (taxRuleModel, error) {
	products, err := json.Marshal(rule.ApplicableProducts)
	if err != nil {
		return taxRuleModel{}, err
	}
	return taxRuleModel{
		RuleID:             strings.TrimSpace(rule.RuleID),
		Name:               rule.Name,
		Description:        rule.Description,
		Rate:               rule.Rate,
		TaxType:            string(rule.TaxType),
		IsInclusive:        rule.IsInclusive,
		IsActive:           rule.IsActive,
		ApplicableProducts: products,
		Priority:           rule.Priority,
		CreatedAt:          rule.CreatedAt,
		UpdatedAt:          rule.UpdatedAt,
	}, nil
}

func (m taxRuleModel) toEntity() (entities.TaxRule, error) {
	var products []string
	if len(m.ApplicableProducts) > 0 {
		if err := json.Unmarshal(m.ApplicableProducts, &products); err != nil {
			return entities.TaxRule{}, err
		}
	}
	return entities.TaxRule{
		RuleID:             m.RuleID,
		Name:               m.Name,
		Description:        m.Description,
		Rate:               m.Rate,
		TaxType:            entities.TaxType(m.TaxType),
		IsInclusive:        m.IsInclusive,
		IsActive:           m.IsActive,
		ApplicableProducts: products,
		Priority:           m.Priority,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}
