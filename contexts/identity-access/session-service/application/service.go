package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bazaar/contexts/identity-access/session-service/domain/entities"
	domainerrors "bazaar/contexts/identity-access/session-service/domain/errors"
	"bazaar/contexts/identity-access/session-service/ports"
)

// Service resolves the caller of a request into an AuthenticatedUser or a
// terminal redirect. Resolution is fail-closed: any uncertainty about the
// identity yields the unauthenticated redirect, never a granted state.
type Service struct {
	Identity ports.IdentityProvider
	Profiles ports.ProfileStore
	Logger   *slog.Logger
}

// Resolve runs the session ladder: authenticate, check approval, divert
// customers out of the admin boundary, normalize. A redirect outcome is
// terminal for the current request.
func (s Service) Resolve(ctx context.Context, token string) entities.Resolution {
	logger := resolveLogger(s.Logger)

	if strings.TrimSpace(token) == "" {
		return entities.RedirectToLogin(entities.ReasonUnauthenticated)
	}

	identity, err := s.Identity.Authenticate(ctx, token)
	if err != nil {
		reason := entities.ReasonUnauthenticated
		if errors.Is(err, domainerrors.ErrTokenExpired) {
			reason = entities.ReasonSessionExpired
		}
		logger.Warn("identity resolution failed",
			"event", "session_identity_failed",
			"module", "identity-access/session-service",
			"layer", "application",
			"reason", string(reason),
			"error", err.Error(),
		)
		return entities.RedirectToLogin(reason)
	}

	profile, err := s.Profiles.GetProfile(ctx, identity.UserID)
	if err != nil {
		logger.Warn("profile lookup failed, treating as unauthenticated",
			"event", "session_profile_lookup_failed",
			"module", "identity-access/session-service",
			"layer", "application",
			"user_id", identity.UserID,
			"error", err.Error(),
		)
		return entities.RedirectToLogin(entities.ReasonUnauthenticated)
	}

	if !profile.IsApproved {
		return entities.RedirectToLogin(entities.ReasonPendingApproval)
	}

	role := entities.NormalizeRole(strings.TrimSpace(profile.Role))

	if role == entities.RoleCustomer {
		logger.Debug("customer diverted from admin boundary",
			"event", "session_wrong_audience",
			"module", "identity-access/session-service",
			"layer", "application",
			"user_id", identity.UserID,
		)
		return entities.RedirectToStorefront()
	}

	permissions := profile.Permissions
	if permissions == nil {
		permissions = map[string]string{}
	}

	return entities.ResolvedUser(entities.AuthenticatedUser{
		ID:          identity.UserID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		Role:        role,
		IsApproved:  profile.IsApproved,
		Permissions: permissions,
	})
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
