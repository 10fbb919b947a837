package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProductPayload struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku"`
	PriceCents  int64  `json:"price_cents"`
	Status      string `json:"status"`
	CategoryID  string `json:"category_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ListProductsRequest struct {
	Search  string
	Status  string
	Page    int
	PerPage int
}

type ListProductsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []ProductPayload `json:"items"`
		Total   int              `json:"total"`
		Page    int              `json:"page"`
		PerPage int              `json:"per_page"`
		CanEdit bool             `json:"can_edit"`
	} `json:"data"`
}

type GetProductResponse struct {
	Status string         `json:"status"`
	Data   ProductPayload `json:"data"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku"`
	PriceCents  int64  `json:"price_cents"`
	Status      string `json:"status,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
}

type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Status      string `json:"status"`
	CategoryID  string `json:"category_id,omitempty"`
}
