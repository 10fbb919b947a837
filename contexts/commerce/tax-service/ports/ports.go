package ports

import (
	"context"
	"time"

	"bazaar/contexts/commerce/tax-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type TaxRuleFilter struct {
	Search   string
	IsActive *bool
	Page     int
	PerPage  int
}

type TaxRulePage struct {
	Items []entities.TaxRule
	Total int
}

type Repository interface {
	CreateTaxRule(ctx context.Context, rule entities.TaxRule) error
	UpdateTaxRule(ctx context.Context, rule entities.TaxRule) error
	GetTaxRule(ctx context.Context, ruleID string) (entities.TaxRule, error)
	ListTaxRules(ctx context.Context, filter TaxRuleFilter) (TaxRulePage, error)
	// ListActiveRulesByPriority returns active rules ordered by priority
	// descending, for calculation.
	ListActiveRulesByPriority(ctx context.Context) ([]entities.TaxRule, error)
	DeleteTaxRule(ctx context.Context, ruleID string) error
}
