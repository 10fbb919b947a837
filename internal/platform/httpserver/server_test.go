package httpserver

import (
	"io"
	"log/slog"

	category "bazaar/contexts/catalog/category-service"
	product "bazaar/contexts/catalog/product-service"
	inventory "bazaar/contexts/commerce/inventory-service"
	order "bazaar/contexts/commerce/order-service"
	tax "bazaar/contexts/commerce/tax-service"
	session "bazaar/contexts/identity-access/session-service"
	sessionmemory "bazaar/contexts/identity-access/session-service/adapters/memory"
	sessionports "bazaar/contexts/identity-access/session-service/ports"
	directory "bazaar/contexts/identity-access/user-directory"
)

// Test tokens mapped to seeded console users. Each maps onto one spot of
// the role/grant matrix the gate distinguishes.
const (
	adminToken        = "admin-token"
	staffProductsEdit = "staff-products-edit-token"
	staffInvView      = "staff-inventory-view-token"
	staffUsersEdit    = "staff-users-edit-token"
	customerToken     = "customer-token"
	pendingToken      = "pending-token"
	expiredToken      = "expired-token"
)

func newTestServer() (*Server, *sessionmemory.Provider) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider := sessionmemory.NewProvider()
	provider.SeedSession(adminToken, sessionports.Identity{UserID: "user-admin", Email: "admin@example.com"})
	provider.SeedProfile("user-admin", sessionports.Profile{Role: "ADMIN", IsApproved: true})

	provider.SeedSession(staffProductsEdit, sessionports.Identity{UserID: "user-staff-pe", Email: "pe@example.com"})
	provider.SeedProfile("user-staff-pe", sessionports.Profile{
		Role:        "STAFF",
		IsApproved:  true,
		Permissions: map[string]string{"products": "edit"},
	})

	provider.SeedSession(staffInvView, sessionports.Identity{UserID: "user-staff-iv", Email: "iv@example.com"})
	provider.SeedProfile("user-staff-iv", sessionports.Profile{
		Role:        "STAFF",
		IsApproved:  true,
		Permissions: map[string]string{"inventory": "view"},
	})

	provider.SeedSession(staffUsersEdit, sessionports.Identity{UserID: "user-staff-ue", Email: "ue@example.com"})
	provider.SeedProfile("user-staff-ue", sessionports.Profile{
		Role:        "STAFF",
		IsApproved:  true,
		Permissions: map[string]string{"users": "edit"},
	})

	provider.SeedSession(customerToken, sessionports.Identity{UserID: "user-customer", Email: "c@example.com"})
	provider.SeedProfile("user-customer", sessionports.Profile{Role: "CUSTOMER", IsApproved: true})

	provider.SeedSession(pendingToken, sessionports.Identity{UserID: "user-pending", Email: "p@example.com"})
	provider.SeedProfile("user-pending", sessionports.Profile{Role: "STAFF", IsApproved: false})

	provider.SeedExpiredSession(expiredToken)

	modules := Modules{
		Sessions: session.NewModule(session.Dependencies{
			Identity: provider,
			Profiles: provider,
			Logger:   logger,
		}),
		Products:   product.NewInMemoryModule(logger),
		Categories: category.NewInMemoryModule(logger),
		Inventory:  inventory.NewInMemoryModule(logger),
		Orders:     order.NewInMemoryModule(logger),
		Users:      directory.NewInMemoryModule(logger),
		Tax:        tax.NewInMemoryModule(logger),
	}
	return New(modules, logger, ":0", false), provider
}
