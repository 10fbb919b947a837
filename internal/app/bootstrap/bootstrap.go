package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	category "bazaar/contexts/catalog/category-service"
	categorypostgres "bazaar/contexts/catalog/category-service/adapters/postgres"
	product "bazaar/contexts/catalog/product-service"
	productpostgres "bazaar/contexts/catalog/product-service/adapters/postgres"
	inventory "bazaar/contexts/commerce/inventory-service"
	inventorypostgres "bazaar/contexts/commerce/inventory-service/adapters/postgres"
	order "bazaar/contexts/commerce/order-service"
	orderpostgres "bazaar/contexts/commerce/order-service/adapters/postgres"
	tax "bazaar/contexts/commerce/tax-service"
	taxpostgres "bazaar/contexts/commerce/tax-service/adapters/postgres"
	session "bazaar/contexts/identity-access/session-service"
	"bazaar/contexts/identity-access/session-service/adapters/jwtverify"
	sessionmemory "bazaar/contexts/identity-access/session-service/adapters/memory"
	directory "bazaar/contexts/identity-access/user-directory"
	directorypostgres "bazaar/contexts/identity-access/user-directory/adapters/postgres"
	"bazaar/internal/platform/config"
	"bazaar/internal/platform/db"
	"bazaar/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		// Development mode: everything in memory, no external services.
		users := directory.NewInMemoryModule(logger)
		modules := httpserver.Modules{
			Sessions: session.NewModule(session.Dependencies{
				Identity: sessionmemory.NewProvider(),
				Profiles: users.Store,
				Logger:   logger,
			}),
			Products:   product.NewInMemoryModule(logger),
			Categories: category.NewInMemoryModule(logger),
			Inventory:  inventory.NewInMemoryModule(logger),
			Orders:     order.NewInMemoryModule(logger),
			Users:      users,
			Tax:        tax.NewInMemoryModule(logger),
		}
		server := httpserver.New(modules, logger, normalizeAddr(cfg.HTTPPort), cfg.EnableSwaggerUI)
		return &APIApp{server: server, logger: logger}, nil
	}

	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	userRepo := directorypostgres.NewRepository(pg.DB, logger)
	categoryRepo := categorypostgres.NewRepository(pg.DB, logger)
	inventoryRepo := inventorypostgres.NewRepository(pg.DB, logger)
	identity := jwtverify.NewProvider([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience)

	modules := httpserver.Modules{
		Sessions: session.NewModule(session.Dependencies{
			Identity: identity,
			Profiles: userRepo,
			Logger:   logger,
		}),
		Products: product.NewModule(product.Dependencies{
			Repository:  productpostgres.NewRepository(pg.DB, logger),
			Clock:       productpostgres.SystemClock{},
			IDGenerator: productpostgres.UUIDGenerator{},
			Logger:      logger,
		}),
		Categories: category.NewModule(category.Dependencies{
			Repository:  categoryRepo,
			Clock:       categoryRepo,
			IDGenerator: categoryRepo,
			Logger:      logger,
		}),
		Inventory: inventory.NewModule(inventory.Dependencies{
			Repository:  inventoryRepo,
			Clock:       inventoryRepo,
			IDGenerator: inventoryRepo,
			Logger:      logger,
		}),
		Orders: order.NewModule(order.Dependencies{
			Repository: orderpostgres.NewRepository(pg.DB, logger),
			Clock:      orderpostgres.SystemClock{},
			Logger:     logger,
		}),
		Users: directory.NewModule(directory.Dependencies{
			Repository: userRepo,
			Clock:      userRepo,
			Logger:     logger,
		}),
		Tax: tax.NewModule(tax.Dependencies{
			Repository:  taxpostgres.NewRepository(pg.DB, logger),
			Clock:       taxpostgres.SystemClock{},
			IDGenerator: taxpostgres.UUIDGenerator{},
			Logger:      logger,
		}),
	}

	server := httpserver.New(modules, logger, normalizeAddr(cfg.HTTPPort), cfg.EnableSwaggerUI)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
