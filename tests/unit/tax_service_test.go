package unit

import (
	"context"
	"errors"
	"testing"

	tax "bazaar/contexts/commerce/tax-service"
	domainerrors "bazaar/contexts/commerce/tax-service/domain/errors"
	httptransport "bazaar/contexts/commerce/tax-service/transport/http"
)

func createRule(t *testing.T, module tax.Module, req httptransport.TaxRuleRequest) httptransport.GetTaxRuleResponse {
	t.Helper()
	resp, err := module.Handler.CreateTaxRuleHandler(context.Background(), req)
	if err != nil {
		t.Fatalf("create tax rule %q failed: %v", req.Name, err)
	}
	return resp
}

func TestTaxRuleValidation(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	ctx := context.Background()

	cases := []httptransport.TaxRuleRequest{
		{Rate: 100, TaxType: "percentage"},                    // missing name
		{Name: "R", Rate: -1, TaxType: "percentage"},          // negative rate
		{Name: "R", Rate: 100, TaxType: "tithe"},              // unknown type
		{Name: "R", Rate: 100, TaxType: "fixed", Priority: -1}, // negative priority
	}
	for _, req := range cases {
		if _, err := module.Handler.CreateTaxRuleHandler(ctx, req); !errors.Is(err, domainerrors.ErrInvalidTaxRuleInput) {
			t.Fatalf("request %+v: expected invalid input, got %v", req, err)
		}
	}
}

func TestTaxCalculateExclusivePercentage(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	createRule(t, module, httptransport.TaxRuleRequest{
		Name: "VAT 20%", Rate: 2000, TaxType: "percentage", IsActive: true,
	})

	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: 10000})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.TaxAmountCents != 2000 {
		t.Fatalf("expected 2000 cents tax, got %d", resp.Data.TaxAmountCents)
	}
	if resp.Data.RuleName != "VAT 20%" || resp.Data.IsInclusive {
		t.Fatalf("unexpected calculation %+v", resp.Data)
	}
}

func TestTaxCalculateInclusivePercentage(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	createRule(t, module, httptransport.TaxRuleRequest{
		Name: "VAT incl", Rate: 2000, TaxType: "percentage", IsInclusive: true, IsActive: true,
	})

	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: 12000})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	// 12000 gross at 20% inclusive backs out 2000 of tax.
	if resp.Data.TaxAmountCents != 2000 {
		t.Fatalf("expected 2000 cents tax, got %d", resp.Data.TaxAmountCents)
	}
	if !resp.Data.IsInclusive {
		t.Fatal("inclusive flag lost")
	}
}

func TestTaxCalculateFixedAmount(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	createRule(t, module, httptransport.TaxRuleRequest{
		Name: "Env fee", Rate: 250, TaxType: "fixed", IsActive: true,
	})

	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: 99})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.TaxAmountCents != 250 {
		t.Fatalf("expected flat 250 cents, got %d", resp.Data.TaxAmountCents)
	}
}

func TestTaxProductSpecificRuleBeatsDefault(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	createRule(t, module, httptransport.TaxRuleRequest{
		Name: "Default", Rate: 2000, TaxType: "percentage", IsActive: true, Priority: 100,
	})
	createRule(t, module, httptransport.TaxRuleRequest{
		Name: "Books reduced", Rate: 500, TaxType: "percentage", IsActive: true, Priority: 10,
		ApplicableProducts: []string{"prod-book"},
	})

	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{
		SubtotalCents: 10000,
		ProductIDs:    []string{"prod-book"},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.RuleName != "Books reduced" || resp.Data.TaxAmountCents != 500 {
		t.Fatalf("product-specific rule did not win: %+v", resp.Data)
	}

	// Orders without the matching product fall back to the default rule.
	resp, err = module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{
		SubtotalCents: 10000,
		ProductIDs:    []string{"prod-other"},
	})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.RuleName != "Default" || resp.Data.TaxAmountCents != 2000 {
		t.Fatalf("default rule not applied: %+v", resp.Data)
	}
}

func TestTaxCalculateWithNoRulesConfigured(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: 10000})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.TaxAmountCents != 0 {
		t.Fatalf("expected zero tax, got %d", resp.Data.TaxAmountCents)
	}
	if resp.Data.Message != "no tax rules configured" {
		t.Fatalf("unexpected message %q", resp.Data.Message)
	}
}

func TestTaxToggleDeactivatesRule(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	created := createRule(t, module, httptransport.TaxRuleRequest{
		Name: "VAT", Rate: 2000, TaxType: "percentage", IsActive: true,
	})

	toggled, err := module.Handler.ToggleTaxRuleHandler(context.Background(), created.Data.RuleID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if toggled.Data.IsActive {
		t.Fatal("expected rule inactive after toggle")
	}

	// Inactive rules drop out of calculation.
	resp, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: 10000})
	if err != nil {
		t.Fatalf("calculate failed: %v", err)
	}
	if resp.Data.TaxAmountCents != 0 {
		t.Fatalf("inactive rule still applied: %+v", resp.Data)
	}
}

func TestTaxCalculateRejectsNegativeSubtotal(t *testing.T) {
	module := tax.NewInMemoryModule(nil)
	_, err := module.Handler.CalculateTaxHandler(context.Background(), httptransport.CalculateTaxRequest{SubtotalCents: -1})
	if !errors.Is(err, domainerrors.ErrInvalidTaxRuleInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
