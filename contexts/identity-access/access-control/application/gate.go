package application

import (
	"context"
	"log/slog"

	"bazaar/contexts/identity-access/access-control/domain/entities"
	"bazaar/contexts/identity-access/access-control/domain/services"
	sessionapp "bazaar/contexts/identity-access/session-service/application"
	sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"
)

// Gate is the per-route access orchestrator. It resolves the session once
// through the request-scoped resolver, evaluates the route's module, and
// produces a terminal outcome: redirect, denied, or granted.
type Gate struct {
	Logger *slog.Logger
}

// Guard gates a view of the given module. The CanEdit flag on a granted
// outcome is advisory for presentation; state-mutating paths must call
// Authorize before applying the mutation.
func (g Gate) Guard(ctx context.Context, module entities.Module) entities.Outcome {
	logger := resolveLogger(g.Logger)

	resolver, ok := sessionapp.FromContext(ctx)
	if !ok {
		// No session resolver on the request: fail closed.
		logger.Error("request context missing session resolver",
			"event", "access_gate_missing_resolver",
			"module", "identity-access/access-control",
			"layer", "application",
			"target_module", string(module),
		)
		return entities.RedirectOutcome(sessionentities.Redirect{
			Target: sessionentities.RedirectTargetLogin,
			Reason: sessionentities.ReasonUnauthenticated,
		})
	}

	resolution := resolver.Resolve(ctx)
	if resolution.Kind == sessionentities.ResolutionRedirect {
		return entities.RedirectOutcome(resolution.Redirect)
	}

	decision := services.Evaluate(resolution.User, module)
	if !decision.HasAccess {
		logger.Info("module access denied",
			"event", "access_gate_denied",
			"module", "identity-access/access-control",
			"layer", "application",
			"target_module", string(module),
			"user_id", resolution.User.ID,
			"role", string(resolution.User.Role),
		)
		return entities.DeniedOutcome(module)
	}

	return entities.GrantedOutcome(resolution.User, module, decision.CanEdit)
}

// Authorize re-evaluates the user against the module for a mutation. Write
// paths call this server-side regardless of what the view-level gate
// reported, so a direct write path can never ride on a stale or presentation-
// only CanEdit signal.
func (g Gate) Authorize(user sessionentities.AuthenticatedUser, module entities.Module) bool {
	return services.Evaluate(user, module).CanEdit
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
