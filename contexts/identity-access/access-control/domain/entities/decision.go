package entities

import sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"

// PermissionLevel is the per-module grant level, totally ordered
// none < view < edit.
type PermissionLevel string

const (
	LevelNone PermissionLevel = "none"
	LevelView PermissionLevel = "view"
	LevelEdit PermissionLevel = "edit"
)

// LevelFromGrant normalizes a raw grant value onto the closed level enum.
// Absent or unrecognized values resolve to none, never to an error.
func LevelFromGrant(raw string, present bool) PermissionLevel {
	if !present {
		return LevelNone
	}
	switch PermissionLevel(raw) {
	case LevelView:
		return LevelView
	case LevelEdit:
		return LevelEdit
	default:
		return LevelNone
	}
}

// Decision is the access pair for one (user, module) evaluation. It is
// recomputed on every evaluation and never stored.
type Decision struct {
	HasAccess bool
	CanEdit   bool
}

// OutcomeKind tags the gate result for a protected route.
type OutcomeKind string

const (
	OutcomeRedirect OutcomeKind = "redirect"
	OutcomeDenied   OutcomeKind = "denied"
	OutcomeGranted  OutcomeKind = "granted"
)

// Outcome is the tagged gate result. A denied outcome carries only the
// module name so the denial view can never leak module data; a granted
// outcome threads CanEdit to downstream mutation affordances.
type Outcome struct {
	Kind     OutcomeKind
	Redirect sessionentities.Redirect
	Module   Module
	User     sessionentities.AuthenticatedUser
	CanEdit  bool
}

func RedirectOutcome(redirect sessionentities.Redirect) Outcome {
	return Outcome{Kind: OutcomeRedirect, Redirect: redirect}
}

func DeniedOutcome(module Module) Outcome {
	return Outcome{Kind: OutcomeDenied, Module: module}
}

func GrantedOutcome(user sessionentities.AuthenticatedUser, module Module, canEdit bool) Outcome {
	return Outcome{Kind: OutcomeGranted, Module: module, User: user, CanEdit: canEdit}
}
