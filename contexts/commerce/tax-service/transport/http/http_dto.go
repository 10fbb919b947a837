package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TaxRulePayload struct {
	RuleID             string   `json:"rule_id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Rate               int64    `json:"rate"`
	TaxType            string   `json:"tax_type"`
	IsInclusive        bool     `json:"is_inclusive"`
	IsActive           bool     `json:"is_active"`
	ApplicableProducts []string `json:"applicable_products,omitempty"`
	Priority           int      `json:"priority"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type ListTaxRulesRequest struct {
	Search   string
	IsActive *bool
	Page     int
	PerPage  int
}

type ListTaxRulesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []TaxRulePayload `json:"items"`
		Total   int              `json:"total"`
		Page    int              `json:"page"`
		PerPage int              `json:"per_page"`
		CanEdit bool             `json:"can_edit"`
	} `json:"data"`
}

type GetTaxRuleResponse struct {
	Status string         `json:"status"`
	Data   TaxRulePayload `json:"data"`
}

type TaxRuleRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Rate               int64    `json:"rate"`
	TaxType            string   `json:"tax_type"`
	IsInclusive        bool     `json:"is_inclusive"`
	IsActive           bool     `json:"is_active"`
	ApplicableProducts []string `json:"applicable_products,omitempty"`
	Priority           int      `json:"priority"`
}

type CalculateTaxRequest struct {
	SubtotalCents int64    `json:"subtotal_cents"`
	ProductIDs    []string `json:"product_ids,omitempty"`
}

type CalculateTaxResponse struct {
	Status string `json:"status"`
	Data   struct {
		TaxAmountCents int64  `json:"tax_amount_cents"`
		Rate           int64  `json:"rate"`
		TaxType        string `json:"tax_type"`
		IsInclusive    bool   `json:"is_inclusive"`
		RuleName       string `json:"rule_name,omitempty"`
		Message        string `json:"message"`
	} `json:"data"`
}
