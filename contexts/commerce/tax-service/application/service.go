package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/commerce/tax-service/domain/entities"
	domainerrors "bazaar/contexts/commerce/tax-service/domain/errors"
	"bazaar/contexts/commerce/tax-service/ports"
)

type Service struct {
	Repo        ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type TaxRuleInput struct {
	Name               string
	Description        string
	Rate               int64
	TaxType            entities.TaxType
	IsInclusive        bool
	IsActive           bool
	ApplicableProducts []string
	Priority           int
}

func (s Service) ListTaxRules(ctx context.Context, filter ports.TaxRuleFilter) (ports.TaxRulePage, error) {
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
	return s.Repo.ListTaxRules(ctx, filter)
}

func (s Service) GetTaxRule(ctx context.Context, ruleID string) (entities.TaxRule, error) {
	if strings.TrimSpace(ruleID) == "" {
		return entities.TaxRule{}, domainerrors.ErrInvalidTaxRuleInput
	}
	return s.Repo.GetTaxRule(ctx, strings.TrimSpace(ruleID))
}

func (s Service) CreateTaxRule(ctx context.Context, input TaxRuleInput) (entities.TaxRule, error) {
	if err := validateRuleInput(input); err != nil {
		return entities.TaxRule{}, err
	}

	ruleID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.TaxRule{}, err
	}
	now := s.now()
	rule := entities.TaxRule{
		RuleID:             ruleID,
		Name:               strings.TrimSpace(input.Name),
		Description:        strings.TrimSpace(input.Description),
		Rate:               input.Rate,
		TaxType:            input.TaxType,
		IsInclusive:        input.IsInclusive,
		IsActive:           input.IsActive,
		ApplicableProducts: input.ApplicableProducts,
		Priority:           input.Priority,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Repo.CreateTaxRule(ctx, rule); err != nil {
		return entities.TaxRule{}, err
	}
	return rule, nil
}

func (s Service) UpdateTaxRule(ctx context.Context, ruleID string, input TaxRuleInput) (entities.TaxRule, error) {
	if strings.TrimSpace(ruleID) == "" {
		return entities.TaxRule{}, domainerrors.ErrInvalidTaxRuleInput
	}
	if err := validateRuleInput(input); err != nil {
		return entities.TaxRule{}, err
	}

	rule, err := s.Repo.GetTaxRule(ctx, strings.TrimSpace(ruleID))
	if err != nil {
		return entities.TaxRule{}, err
	}
	rule.Name = strings.TrimSpace(input.Name)
	rule.Description = strings.TrimSpace(input.Description)
	rule.Rate = input.Rate
	rule.TaxType = input.TaxType
	rule.IsInclusive = input.IsInclusive
	rule.IsActive = input.IsActive
	rule.ApplicableProducts = input.ApplicableProducts
	rule.Priority = input.Priority
	rule.UpdatedAt = s.now()

	if err := s.Repo.UpdateTaxRule(ctx, rule); err != nil {
		return entities.TaxRule{}, err
	}
	return rule, nil
}

// ToggleTaxRule flips a rule's active flag.
func (s Service) ToggleTaxRule(ctx context.Context, ruleID string) (entities.TaxRule, error) {
	if strings.TrimSpace(ruleID) == "" {
		return entities.TaxRule{}, domainerrors.ErrInvalidTaxRuleInput
	}
	rule, err := s.Repo.GetTaxRule(ctx, strings.TrimSpace(ruleID))
	if err != nil {
		return entities.TaxRule{}, err
	}
	rule.IsActive = !rule.IsActive
	rule.UpdatedAt = s.now()
	if err := s.Repo.UpdateTaxRule(ctx, rule); err != nil {
		return entities.TaxRule{}, err
	}
	return rule, nil
}

func (s Service) DeleteTaxRule(ctx context.Context, ruleID string) error {
	if strings.TrimSpace(ruleID) == "" {
		return domainerrors.ErrInvalidTaxRuleInput
	}
	return s.Repo.DeleteTaxRule(ctx, strings.TrimSpace(ruleID))
}

// CalculateTax applies the configured rule set to an order subtotal.
func (s Service) CalculateTax(ctx context.Context, subtotalCents int64, productIDs []string) (entities.Calculation, error) {
	if subtotalCents < 0 {
		return entities.Calculation{}, domainerrors.ErrInvalidTaxRuleInput
	}
	rules, err := s.Repo.ListActiveRulesByPriority(ctx)
	if err != nil {
		return entities.Calculation{}, err
	}
	if len(rules) == 0 {
		return entities.Calculation{
			TaxType: entities.TaxTypePercentage,
			Message: "no tax rules configured",
		}, nil
	}
	return entities.CalculateTax(rules, subtotalCents, productIDs), nil
}

func validateRuleInput(input TaxRuleInput) error {
	if strings.TrimSpace(input.Name) == "" || len(input.Name) > 100 {
		return domainerrors.ErrInvalidTaxRuleInput
	}
	if input.Rate < 0 || input.Priority < 0 {
		return domainerrors.ErrInvalidTaxRuleInput
	}
	if !entities.IsValidTaxType(input.TaxType) {
		return domainerrors.ErrInvalidTaxRuleInput
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
