package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UserPayload struct {
	UserID      string            `json:"user_id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name,omitempty"`
	Role        string            `json:"role"`
	IsApproved  bool              `json:"is_approved"`
	Permissions map[string]string `json:"permissions"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
}

type ListUsersRequest struct {
	Role        string
	PendingOnly bool
	Search      string
	Page        int
	PerPage     int
}

type ListUsersResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items   []UserPayload `json:"items"`
		Total   int           `json:"total"`
		Page    int           `json:"page"`
		PerPage int           `json:"per_page"`
		CanEdit bool          `json:"can_edit"`
	} `json:"data"`
}

type GetUserResponse struct {
	Status string      `json:"status"`
	Data   UserPayload `json:"data"`
}

type SetApprovalRequest struct {
	Approved bool `json:"approved"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type SetPermissionsRequest struct {
	Permissions map[string]string `json:"permissions"`
}
