package entities

import "time"

// TaxType selects how a rule's rate is interpreted.
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
)

func IsValidTaxType(taxType TaxType) bool {
	return taxType == TaxTypePercentage || taxType == TaxTypeFixed
}

// TaxRule configures one tax computation rule. Rate is basis points for
// percentage rules (2000 = 20%) and cents for fixed rules.
type TaxRule struct {
	RuleID             string
	Name               string
	Description        string
	Rate               int64
	TaxType            TaxType
	IsInclusive        bool
	IsActive           bool
	ApplicableProducts []string
	Priority           int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AppliesToAllProducts reports whether the rule is a default rule rather
// than a product-specific one.
func (r TaxRule) AppliesToAllProducts() bool {
	return len(r.ApplicableProducts) == 0
}

// TaxAmountCents computes the tax owed on a subtotal under this rule.
// Inclusive percentage rules back the tax out of the subtotal instead of
// adding on top.
func (r TaxRule) TaxAmountCents(subtotalCents int64) int64 {
	if r.TaxType == TaxTypeFixed {
		return r.Rate
	}
	if r.IsInclusive {
		return subtotalCents - (subtotalCents*10000)/(10000+r.Rate)
	}
	return (subtotalCents * r.Rate) / 10000
}
