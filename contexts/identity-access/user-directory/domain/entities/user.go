package entities

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleStaff    = "STAFF"
	RoleCustomer = "CUSTOMER"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	default:
		return false
	}
}

// GrantKeys are the permission-map keys an admin may assign to staff.
// There is deliberately no tax key: the tax module rides the products
// grant, so a stored tax key would be dead data.
var GrantKeys = []string{"products", "categories", "inventory", "orders", "users"}

func IsValidGrantKey(key string) bool {
	for _, known := range GrantKeys {
		if key == known {
			return true
		}
	}
	return false
}

func IsValidGrantLevel(level string) bool {
	switch level {
	case "none", "view", "edit":
		return true
	default:
		return false
	}
}

// DirectoryUser is one managed account record.
type DirectoryUser struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
	IsApproved  bool
	Permissions map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
