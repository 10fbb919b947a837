package unit

import (
	"context"
	"testing"

	accessapp "bazaar/contexts/identity-access/access-control/application"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
	sessionapp "bazaar/contexts/identity-access/session-service/application"
	sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"
)

func gateContext(t *testing.T, token string) context.Context {
	t.Helper()
	module := seededSessionModule()
	resolver := sessionapp.NewResolver(module.Service, token)
	return sessionapp.NewContext(context.Background(), resolver)
}

func TestGateGrantsViewWithoutEdit(t *testing.T) {
	gate := accessapp.Gate{}
	outcome := gate.Guard(gateContext(t, "tok-staff"), accessentities.ModuleProducts)
	if outcome.Kind != accessentities.OutcomeGranted {
		t.Fatalf("expected granted, got %+v", outcome)
	}
	if outcome.CanEdit {
		t.Fatal("products:view must not grant edit")
	}
	if outcome.User.ID != "user-1" {
		t.Fatalf("granted outcome carries wrong user %q", outcome.User.ID)
	}
}

func TestGateDeniesUngrantedModule(t *testing.T) {
	gate := accessapp.Gate{}
	outcome := gate.Guard(gateContext(t, "tok-staff"), accessentities.ModuleOrders)
	if outcome.Kind != accessentities.OutcomeDenied {
		t.Fatalf("expected denied, got %+v", outcome)
	}
	if outcome.Module != accessentities.ModuleOrders {
		t.Fatalf("denied outcome names wrong module %q", outcome.Module)
	}
	if outcome.User.ID != "" {
		t.Fatal("denied outcome must not carry user data")
	}
}

func TestGatePropagatesSessionRedirect(t *testing.T) {
	gate := accessapp.Gate{}
	outcome := gate.Guard(gateContext(t, ""), accessentities.ModuleProducts)
	if outcome.Kind != accessentities.OutcomeRedirect {
		t.Fatalf("expected redirect, got %+v", outcome)
	}
	if outcome.Redirect.Reason != sessionentities.ReasonUnauthenticated {
		t.Fatalf("unexpected reason %s", outcome.Redirect.Reason)
	}
}

func TestGateFailsClosedWithoutResolver(t *testing.T) {
	gate := accessapp.Gate{}
	outcome := gate.Guard(context.Background(), accessentities.ModuleProducts)
	if outcome.Kind != accessentities.OutcomeRedirect {
		t.Fatalf("expected redirect, got %+v", outcome)
	}
	if outcome.Redirect.Target != sessionentities.RedirectTargetLogin {
		t.Fatalf("unexpected target %s", outcome.Redirect.Target)
	}
}

func TestGateAuthorizeChecksEditServerSide(t *testing.T) {
	gate := accessapp.Gate{}

	viewer := sessionentities.AuthenticatedUser{
		Role:        sessionentities.RoleStaff,
		IsApproved:  true,
		Permissions: map[string]string{"products": "view"},
	}
	if gate.Authorize(viewer, accessentities.ModuleProducts) {
		t.Fatal("view grant must not authorize a mutation")
	}

	editor := sessionentities.AuthenticatedUser{
		Role:        sessionentities.RoleStaff,
		IsApproved:  true,
		Permissions: map[string]string{"products": "edit"},
	}
	if !gate.Authorize(editor, accessentities.ModuleProducts) {
		t.Fatal("edit grant must authorize a mutation")
	}
	if gate.Authorize(editor, accessentities.ModuleOrders) {
		t.Fatal("edit grant on one module must not leak to another")
	}
}
