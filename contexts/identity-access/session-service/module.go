package session

import (
	"log/slog"

	"bazaar/contexts/identity-access/session-service/adapters/memory"
	"bazaar/contexts/identity-access/session-service/application"
	"bazaar/contexts/identity-access/session-service/ports"
)

// Module is the session-service composition root exposed to runtime wiring.
type Module struct {
	Service application.Service
	Store   *memory.Provider
}

// Dependencies captures the runtime ports required by NewModule.
type Dependencies struct {
	Identity ports.IdentityProvider
	Profiles ports.ProfileStore
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Identity: deps.Identity,
			Profiles: deps.Profiles,
			Logger:   deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module backed by the
// in-memory identity provider and profile store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewProvider()
	module := NewModule(Dependencies{
		Identity: store,
		Profiles: store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
