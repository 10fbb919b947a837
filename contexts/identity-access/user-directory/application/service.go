package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/contexts/identity-access/user-directory/domain/entities"
	domainerrors "bazaar/contexts/identity-access/user-directory/domain/errors"
	"bazaar/contexts/identity-access/user-directory/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (s Service) ListUsers(ctx context.Context, filter ports.UserFilter) (ports.UserPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 10
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Role != "" && !entities.IsValidRole(filter.Role) {
		return ports.UserPage{}, domainerrors.ErrInvalidRole
	}
	return s.Repo.ListUsers(ctx, filter)
}

func (s Service) GetUser(ctx context.Context, userID string) (entities.DirectoryUser, error) {
	if strings.TrimSpace(userID) == "" {
		return entities.DirectoryUser{}, domainerrors.ErrInvalidUserInput
	}
	return s.Repo.GetUser(ctx, strings.TrimSpace(userID))
}

// SetApproval approves a pending account. Declining an already approved
// user is rejected; change the role instead to withdraw admin access.
func (s Service) SetApproval(ctx context.Context, userID string, approved bool) (entities.DirectoryUser, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return entities.DirectoryUser{}, err
	}
	if user.IsApproved && !approved {
		return entities.DirectoryUser{}, domainerrors.ErrCannotDeclineApproved
	}
	user.IsApproved = approved
	user.UpdatedAt = s.now()
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return entities.DirectoryUser{}, err
	}

	resolveLogger(s.Logger).Info("user approval updated",
		"event", "user_approval_updated",
		"module", "identity-access/user-directory",
		"layer", "application",
		"user_id", user.UserID,
		"approved", approved,
	)
	return user, nil
}

// SetRole changes an account's role. The last remaining admin cannot be
// demoted, otherwise the console would lock itself out.
func (s Service) SetRole(ctx context.Context, userID string, role string) (entities.DirectoryUser, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if !entities.IsValidRole(role) {
		return entities.DirectoryUser{}, domainerrors.ErrInvalidRole
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return entities.DirectoryUser{}, err
	}
	if user.Role == entities.RoleAdmin && role != entities.RoleAdmin {
		admins, err := s.Repo.CountByRole(ctx, entities.RoleAdmin)
		if err != nil {
			return entities.DirectoryUser{}, err
		}
		if admins <= 1 {
			return entities.DirectoryUser{}, domainerrors.ErrCannotDemoteLastAdmin
		}
	}

	user.Role = role
	user.UpdatedAt = s.now()
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return entities.DirectoryUser{}, err
	}

	resolveLogger(s.Logger).Info("user role updated",
		"event", "user_role_updated",
		"module", "identity-access/user-directory",
		"layer", "application",
		"user_id", user.UserID,
		"role", role,
	)
	return user, nil
}

// SetPermissions replaces a staff account's per-module grants. Keys and
// levels outside the known sets are rejected rather than silently stored.
func (s Service) SetPermissions(ctx context.Context, userID string, grants map[string]string) (entities.DirectoryUser, error) {
	for key, level := range grants {
		if !entities.IsValidGrantKey(key) || !entities.IsValidGrantLevel(level) {
			return entities.DirectoryUser{}, domainerrors.ErrInvalidPermissionGrant
		}
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return entities.DirectoryUser{}, err
	}
	if grants == nil {
		grants = map[string]string{}
	}
	user.Permissions = grants
	user.UpdatedAt = s.now()
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return entities.DirectoryUser{}, err
	}
	return user, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
