package directory

import (
	"log/slog"

	httpadapter "bazaar/contexts/identity-access/user-directory/adapters/http"
	"bazaar/contexts/identity-access/user-directory/adapters/memory"
	"bazaar/contexts/identity-access/user-directory/application"
	"bazaar/contexts/identity-access/user-directory/ports"
)

// Module is the user-directory composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

// Dependencies captures the runtime ports required by NewModule.
type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{Service: service, Logger: deps.Logger},
		Service: service,
	}
}

// NewInMemoryModule builds a development/testing module with the in-memory
// store, which also serves as the session-service profile store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
