package entities

// Role is the coarse identity class fixed per account.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// NormalizeRole maps a raw profile role string onto the closed enum.
// Unknown or empty values collapse to CUSTOMER, which every downstream
// check treats as deny.
func NormalizeRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleStaff:
		return RoleStaff
	default:
		return RoleCustomer
	}
}

// AuthenticatedUser is the per-request identity snapshot produced by
// session resolution. It is never persisted and never mutated after
// construction; all access checks within a request read the same snapshot.
type AuthenticatedUser struct {
	ID          string
	Email       string
	DisplayName string
	Role        Role
	IsApproved  bool
	// Permissions is the raw per-module grant map from the profile record.
	// Keys may be absent; normalization to explicit levels happens at the
	// evaluator boundary, not here.
	Permissions map[string]string
}
