package entities

// Calculation is the result of applying the configured rule set to an
// order subtotal.
type Calculation struct {
	TaxAmountCents int64
	Rate           int64
	TaxType        TaxType
	IsInclusive    bool
	RuleName       string
	Message        string
}

// CalculateTax picks the applicable rule and computes the tax amount.
// Rules must arrive ordered by priority descending. A product-specific
// rule that matches one of the order's products wins over the first
// default rule; with no applicable rule, tax is zero.
func CalculateTax(rules []TaxRule, subtotalCents int64, productIDs []string) Calculation {
	var defaultRule *TaxRule
	var matched *TaxRule

	ordered := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		ordered[id] = true
	}

	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive {
			continue
		}
		if rule.AppliesToAllProducts() {
			if defaultRule == nil {
				defaultRule = rule
			}
			continue
		}
		if matched == nil {
			for _, productID := range rule.ApplicableProducts {
				if ordered[productID] {
					matched = rule
					break
				}
			}
		}
	}

	final := matched
	if final == nil {
		final = defaultRule
	}
	if final == nil {
		return Calculation{
			TaxType: TaxTypePercentage,
			Message: "no applicable tax rule found",
		}
	}

	return Calculation{
		TaxAmountCents: final.TaxAmountCents(subtotalCents),
		Rate:           final.Rate,
		TaxType:        final.TaxType,
		IsInclusive:    final.IsInclusive,
		RuleName:       final.Name,
		Message:        "tax calculated using '" + final.Name + "' rule",
	}
}
