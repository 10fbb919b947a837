package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OrderItemPayload struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderPayload struct {
	OrderID       string             `json:"order_id"`
	OrderNumber   string             `json:"order_number"`
	CustomerEmail string             `json:"customer_email"`
	Status        string             `json:"status"`
	TotalCents    int64              `json:"total_cents"`
	Items         []OrderItemPayload `json:"items,omitempty"`
	PlacedAt      string             `json:"placed_at"`
	UpdatedAt     string             `json:"updated_at"`
}

type ListOrdersRequest struct {
	Status  string
	Search  string
	Page    int
	PerPage int
}

type ListOrdersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []OrderPayload `json:"items"`
		Total   int            `json:"total"`
		Page    int            `json:"page"`
		PerPage int            `json:"per_page"`
		CanEdit bool           `json:"can_edit"`
	} `json:"data"`
}

type GetOrderResponse struct {
	Status string       `json:"status"`
	Data   OrderPayload `json:"data"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
