package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StockPayload struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	SKU               string `json:"sku"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Location          string `json:"location,omitempty"`
	LowStock          bool   `json:"low_stock"`
	UpdatedAt         string `json:"updated_at"`
}

type ListStockResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []StockPayload `json:"items"`
		CanEdit bool           `json:"can_edit"`
	} `json:"data"`
}

type GetStockResponse struct {
	Status string       `json:"status"`
	Data   StockPayload `json:"data"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

type AdjustmentPayload struct {
	AdjustmentID string `json:"adjustment_id"`
	ProductID    string `json:"product_id"`
	Delta        int    `json:"delta"`
	Reason       string `json:"reason"`
	ActorID      string `json:"actor_id,omitempty"`
	AppliedAt    string `json:"applied_at"`
}

type ListAdjustmentsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items []AdjustmentPayload `json:"items"`
	} `json:"data"`
}
