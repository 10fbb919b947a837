package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CategoryPayload struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ListCategoriesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []CategoryPayload `json:"items"`
		CanEdit bool              `json:"can_edit"`
	} `json:"data"`
}

type GetCategoryResponse struct {
	Status string          `json:"status"`
	Data   CategoryPayload `json:"data"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	IsActive    bool   `json:"is_active"`
}
