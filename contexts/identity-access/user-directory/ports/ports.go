package ports

import (
	"context"
	"time"

	"bazaar/contexts/identity-access/user-directory/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// UserFilter narrows the admin user table.
type UserFilter struct {
	Role        string
	PendingOnly bool
	Search      string
	Page        int
	PerPage     int
}

type UserPage struct {
	Items []entities.DirectoryUser
	Total int
}

type Repository interface {
	CreateUser(ctx context.Context, user entities.DirectoryUser) error
	GetUser(ctx context.Context, userID string) (entities.DirectoryUser, error)
	ListUsers(ctx context.Context, filter UserFilter) (UserPage, error)
	UpdateUser(ctx context.Context, user entities.DirectoryUser) error
	CountByRole(ctx context.Context, role string) (int, error)
}
