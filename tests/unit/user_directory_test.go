package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	directory "bazaar/contexts/identity-access/user-directory"
	"bazaar/contexts/identity-access/user-directory/domain/entities"
	domainerrors "bazaar/contexts/identity-access/user-directory/domain/errors"
	httptransport "bazaar/contexts/identity-access/user-directory/transport/http"
)

func seededDirectoryModule(t *testing.T) directory.Module {
	t.Helper()
	module := directory.NewInMemoryModule(nil)
	now := time.Now().UTC()
	users := []entities.DirectoryUser{
		{UserID: "u-admin", Email: "admin@example.com", Role: entities.RoleAdmin, IsApproved: true, CreatedAt: now, UpdatedAt: now},
		{UserID: "u-staff", Email: "staff@example.com", Role: entities.RoleStaff, IsApproved: true,
			Permissions: map[string]string{"products": "view"}, CreatedAt: now, UpdatedAt: now},
		{UserID: "u-pending", Email: "pending@example.com", Role: entities.RoleStaff, IsApproved: false, CreatedAt: now, UpdatedAt: now},
	}
	for _, user := range users {
		if err := module.Store.CreateUser(context.Background(), user); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
	}
	return module
}

func TestDirectoryListPendingOnly(t *testing.T) {
	module := seededDirectoryModule(t)
	resp, err := module.Handler.ListUsersHandler(context.Background(), httptransport.ListUsersRequest{PendingOnly: true}, true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if resp.Data.Total != 1 || resp.Data.Items[0].UserID != "u-pending" {
		t.Fatalf("unexpected pending users %+v", resp.Data)
	}
}

func TestDirectoryApproveUser(t *testing.T) {
	module := seededDirectoryModule(t)
	resp, err := module.Handler.SetApprovalHandler(context.Background(), "u-pending", httptransport.SetApprovalRequest{Approved: true})
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if !resp.Data.IsApproved {
		t.Fatal("user not approved")
	}
}

func TestDirectoryCannotDeclineApprovedUser(t *testing.T) {
	module := seededDirectoryModule(t)
	_, err := module.Handler.SetApprovalHandler(context.Background(), "u-staff", httptransport.SetApprovalRequest{Approved: false})
	if !errors.Is(err, domainerrors.ErrCannotDeclineApproved) {
		t.Fatalf("expected decline rejection, got %v", err)
	}
}

func TestDirectorySetRoleNormalizesCase(t *testing.T) {
	module := seededDirectoryModule(t)
	resp, err := module.Handler.SetRoleHandler(context.Background(), "u-staff", httptransport.SetRoleRequest{Role: "admin"})
	if err != nil {
		t.Fatalf("set role failed: %v", err)
	}
	if resp.Data.Role != "ADMIN" {
		t.Fatalf("expected normalized ADMIN, got %s", resp.Data.Role)
	}
}

func TestDirectoryLastAdminCannotBeDemoted(t *testing.T) {
	module := seededDirectoryModule(t)
	_, err := module.Handler.SetRoleHandler(context.Background(), "u-admin", httptransport.SetRoleRequest{Role: "STAFF"})
	if !errors.Is(err, domainerrors.ErrCannotDemoteLastAdmin) {
		t.Fatalf("expected last-admin guard, got %v", err)
	}

	// With a second admin in place the demotion goes through.
	if _, err := module.Handler.SetRoleHandler(context.Background(), "u-staff", httptransport.SetRoleRequest{Role: "ADMIN"}); err != nil {
		t.Fatalf("promote second admin failed: %v", err)
	}
	resp, err := module.Handler.SetRoleHandler(context.Background(), "u-admin", httptransport.SetRoleRequest{Role: "STAFF"})
	if err != nil {
		t.Fatalf("demote with second admin failed: %v", err)
	}
	if resp.Data.Role != "STAFF" {
		t.Fatalf("unexpected role %s", resp.Data.Role)
	}
}

func TestDirectorySetRoleRejectsUnknownRole(t *testing.T) {
	module := seededDirectoryModule(t)
	_, err := module.Handler.SetRoleHandler(context.Background(), "u-staff", httptransport.SetRoleRequest{Role: "OVERLORD"})
	if !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
}

func TestDirectorySetPermissionsValidatesGrants(t *testing.T) {
	module := seededDirectoryModule(t)
	ctx := context.Background()

	resp, err := module.Handler.SetPermissionsHandler(ctx, "u-staff", httptransport.SetPermissionsRequest{
		Permissions: map[string]string{"products": "edit", "orders": "view"},
	})
	if err != nil {
		t.Fatalf("set permissions failed: %v", err)
	}
	if resp.Data.Permissions["products"] != "edit" || resp.Data.Permissions["orders"] != "view" {
		t.Fatalf("unexpected permissions %+v", resp.Data.Permissions)
	}

	// Tax is covered by the products grant and has no key of its own.
	_, err = module.Handler.SetPermissionsHandler(ctx, "u-staff", httptransport.SetPermissionsRequest{
		Permissions: map[string]string{"tax": "edit"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidPermissionGrant) {
		t.Fatalf("expected invalid grant for tax key, got %v", err)
	}

	_, err = module.Handler.SetPermissionsHandler(ctx, "u-staff", httptransport.SetPermissionsRequest{
		Permissions: map[string]string{"products": "owner"},
	})
	if !errors.Is(err, domainerrors.ErrInvalidPermissionGrant) {
		t.Fatalf("expected invalid grant level, got %v", err)
	}
}

func TestDirectoryStoreServesSessionProfiles(t *testing.T) {
	module := seededDirectoryModule(t)
	profile, err := module.Store.GetProfile(context.Background(), "u-staff")
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if profile.Role != "STAFF" || !profile.IsApproved || profile.Permissions["products"] != "view" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}
