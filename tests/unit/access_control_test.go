package unit

import (
	"testing"

	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
	"bazaar/contexts/identity-access/access-control/domain/services"
	sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"
)

func staffWith(grants map[string]string) sessionentities.AuthenticatedUser {
	return sessionentities.AuthenticatedUser{
		ID:          "user-staff",
		Role:        sessionentities.RoleStaff,
		IsApproved:  true,
		Permissions: grants,
	}
}

func TestAdminHasFullAccessToEveryModule(t *testing.T) {
	admin := sessionentities.AuthenticatedUser{ID: "user-admin", Role: sessionentities.RoleAdmin}
	for _, module := range accessentities.Modules() {
		decision := services.Evaluate(admin, module)
		if !decision.HasAccess || !decision.CanEdit {
			t.Fatalf("module %s: admin expected full access, got %+v", module, decision)
		}
	}
}

func TestCustomerHasNoAccessToAnyModule(t *testing.T) {
	customer := sessionentities.AuthenticatedUser{
		ID:   "user-customer",
		Role: sessionentities.RoleCustomer,
		// Stale grants in the profile must not matter for customers.
		Permissions: map[string]string{"products": "edit", "orders": "edit"},
	}
	for _, module := range accessentities.Modules() {
		decision := services.Evaluate(customer, module)
		if decision.HasAccess || decision.CanEdit {
			t.Fatalf("module %s: customer expected no access, got %+v", module, decision)
		}
	}
}

func TestStaffGrantLevels(t *testing.T) {
	cases := []struct {
		name      string
		grants    map[string]string
		module    accessentities.Module
		hasAccess bool
		canEdit   bool
	}{
		{"view grant grants read only", map[string]string{"inventory": "view"}, accessentities.ModuleInventory, true, false},
		{"edit grant grants read and write", map[string]string{"products": "edit"}, accessentities.ModuleProducts, true, true},
		{"absent grant denies", map[string]string{"products": "edit"}, accessentities.ModuleOrders, false, false},
		{"unrecognized level denies", map[string]string{"orders": "super"}, accessentities.ModuleOrders, false, false},
		{"explicit none denies", map[string]string{"orders": "none"}, accessentities.ModuleOrders, false, false},
		{"nil grant map denies", nil, accessentities.ModuleProducts, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := services.Evaluate(staffWith(tc.grants), tc.module)
			if decision.HasAccess != tc.hasAccess || decision.CanEdit != tc.canEdit {
				t.Fatalf("got %+v, want hasAccess=%v canEdit=%v", decision, tc.hasAccess, tc.canEdit)
			}
		})
	}
}

func TestStaffCanNeverEditUsers(t *testing.T) {
	decision := services.Evaluate(staffWith(map[string]string{"users": "edit"}), accessentities.ModuleUsers)
	if !decision.HasAccess {
		t.Fatal("users:edit grant should still allow viewing the directory")
	}
	if decision.CanEdit {
		t.Fatal("staff must never receive edit on the users module")
	}
}

func TestTaxModuleUsesProductsGrant(t *testing.T) {
	decision := services.Evaluate(staffWith(map[string]string{"products": "edit"}), accessentities.ModuleTax)
	if !decision.HasAccess || !decision.CanEdit {
		t.Fatalf("products:edit should cover tax, got %+v", decision)
	}

	decision = services.Evaluate(staffWith(map[string]string{"products": "view"}), accessentities.ModuleTax)
	if !decision.HasAccess || decision.CanEdit {
		t.Fatalf("products:view should grant tax view only, got %+v", decision)
	}

	// A literal tax grant key is not part of the model and must not apply.
	decision = services.Evaluate(staffWith(map[string]string{"tax": "edit"}), accessentities.ModuleTax)
	if decision.HasAccess || decision.CanEdit {
		t.Fatalf("literal tax grant must not apply, got %+v", decision)
	}
}

func TestUnknownModuleDeniedForEveryRole(t *testing.T) {
	users := []sessionentities.AuthenticatedUser{
		{ID: "a", Role: sessionentities.RoleAdmin},
		staffWith(map[string]string{"products": "edit"}),
		{ID: "c", Role: sessionentities.RoleCustomer},
	}
	for _, user := range users {
		decision := services.Evaluate(user, accessentities.Module("reports"))
		if decision.HasAccess || decision.CanEdit {
			t.Fatalf("role %s: unknown module must be denied, got %+v", user.Role, decision)
		}
	}
}

func TestCanEditImpliesHasAccess(t *testing.T) {
	grantSets := []map[string]string{
		nil,
		{"products": "view"},
		{"products": "edit"},
		{"users": "edit"},
		{"inventory": "edit", "orders": "view"},
		{"tax": "edit"},
	}
	roles := []sessionentities.Role{
		sessionentities.RoleAdmin,
		sessionentities.RoleStaff,
		sessionentities.RoleCustomer,
	}
	for _, role := range roles {
		for _, grants := range grantSets {
			user := sessionentities.AuthenticatedUser{ID: "u", Role: role, Permissions: grants}
			for _, module := range accessentities.Modules() {
				decision := services.Evaluate(user, module)
				if decision.CanEdit && !decision.HasAccess {
					t.Fatalf("role %s module %s grants %v: canEdit without hasAccess", role, module, grants)
				}
			}
		}
	}
}
