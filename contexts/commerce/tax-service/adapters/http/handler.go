package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/commerce/tax-service/application"
	"bazaar/contexts/commerce/tax-service/domain/entities"
	"bazaar/contexts/commerce/tax-service/ports"
	httptransport "bazaar/contexts/commerce/tax-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListTaxRulesHandler(ctx context.Context, req httptransport.ListTaxRulesRequest, canEdit bool) (httptransport.ListTaxRulesResponse, error) {
	page, err := h.Service.ListTaxRules(ctx, ports.TaxRuleFilter{
		Search:   req.Search,
		IsActive: req.IsActive,
		Page:     req.Page,
		PerPage:  req.PerPage,
	})
	if err != nil {
		return httptransport.ListTaxRulesResponse{}, err
	}

	resp := httptransport.ListTaxRulesResponse{Status: "success"}
	resp.Data.Total = page.Total
	resp.Data.Page = req.Page
	resp.Data.PerPage = req.PerPage
	resp.Data.CanEdit = canEdit
	for _, rule := range page.Items {
		resp.Data.Items = append(resp.Data.Items, taxRulePayload(rule))
	}
	return resp, nil
}

func (h Handler) GetTaxRuleHandler(ctx context.Context, ruleID string) (httptransport.GetTaxRuleResponse, error) {
	rule, err := h.Service.GetTaxRule(ctx, ruleID)
	if err != nil {
		return httptransport.GetTaxRuleResponse{}, err
	}
	return httptransport.GetTaxRuleResponse{Status: "success", Data: taxRulePayload(rule)}, nil
}

func (h Handler) CreateTaxRuleHandler(ctx context.Context, req httptransport.TaxRuleRequest) (httptransport.GetTaxRuleResponse, error) {
	rule, err := h.Service.CreateTaxRule(ctx, ruleInput(req))
	if err != nil {
		return httptransport.GetTaxRuleResponse{}, err
	}
	return httptransport.GetTaxRuleResponse{Status: "success", Data: taxRulePayload(rule)}, nil
}

func (h Handler) UpdateTaxRuleHandler(ctx context.Context, ruleID string, req httptransport.TaxRuleRequest) (httptransport.GetTaxRuleResponse, error) {
	rule, err := h.Service.UpdateTaxRule(ctx, ruleID, ruleInput(req))
	if err != nil {
		return httptransport.GetTaxRuleResponse{}, err
	}
	return httptransport.GetTaxRuleResponse{Status: "success", Data: taxRulePayload(rule)}, nil
}

func (h Handler) ToggleTaxRuleHandler(ctx context.Context, ruleID string) (httptransport.GetTaxRuleResponse, error) {
	rule, err := h.Service.ToggleTaxRule(ctx, ruleID)
	if err != nil {
		return httptransport.GetTaxRuleResponse{}, err
	}
	return httptransport.GetTaxRuleResponse{Status: "success", Data: taxRulePayload(rule)}, nil
}

func (h Handler) DeleteTaxRuleHandler(ctx context.Context, ruleID string) error {
	return h.Service.DeleteTaxRule(ctx, ruleID)
}

func (h Handler) CalculateTaxHandler(ctx context.Context, req httptransport.CalculateTaxRequest) (httptransport.CalculateTaxResponse, error) {
	calculation, err := h.Service.CalculateTax(ctx, req.SubtotalCents, req.ProductIDs)
	if err != nil {
		return httptransport.CalculateTaxResponse{}, err
	}
	resp := httptransport.CalculateTaxResponse{Status: "success"}
	resp.Data.TaxAmountCents = calculation.TaxAmountCents
	resp.Data.Rate = calculation.Rate
	resp.Data.TaxType = string(calculation.TaxType)
	resp.Data.IsInclusive = calculation.IsInclusive
	resp.Data.RuleName = calculation.RuleName
	resp.Data.Message = calculation.Message
	return resp, nil
}

func ruleInput(req httptransport.TaxRuleRequest) application.TaxRuleInput {
	return application.TaxRuleInput{
		Name:               req.Name,
		Description:        req.Description,
		Rate:               req.Rate,
		TaxType:            entities.TaxType(req.TaxType),
		IsInclusive:        req.IsInclusive,
		IsActive:           req.IsActive,
		ApplicableProducts: req.ApplicableProducts,
		Priority:           req.Priority,
	}
}

func taxRulePayload(rule entities.TaxRule) httptransport.TaxRulePayload {
	return httptransport.TaxRulePayload{
		RuleID:             rule.RuleID,
		Name:               rule.Name,
		Description:        rule.Description,
		Rate:               rule.Rate,
		TaxType:            string(rule.TaxType),
		IsInclusive:        rule.IsInclusive,
		IsActive:           rule.IsActive,
		ApplicableProducts: rule.ApplicableProducts,
		Priority:           rule.Priority,
		CreatedAt:          rule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          rule.UpdatedAt.Format(time.RFC3339),
	}
}
