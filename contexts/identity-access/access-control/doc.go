// Package accesscontrol decides whether a request may view or mutate one
// of the protected admin modules.
//
// Layering:
// - domain/entities: closed Module/PermissionLevel enums and tagged outcomes
// - domain/services: the pure permission evaluator (the rule table)
// - application: the per-route access gate composing session + evaluator
//
// The evaluator is the single source of truth for access rules. Pages must
// never re-derive hasAccess/canEdit with inline boolean expressions; the
// users-edit override and the tax→products grant alias live here and only
// here so they stay auditable.
package accesscontrol
