package services

import (
	"bazaar/contexts/identity-access/access-control/domain/entities"
	sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"
)

// Evaluate maps a (user, module) pair to an access decision. It is pure,
// performs no I/O, and is total over the module enum: unknown modules and
// unknown roles resolve to deny, never to an error.
//
// Rules:
//   - ADMIN has full access to every module, no grant lookup.
//   - CUSTOMER has no access to any module.
//   - STAFF follows the per-module grant, with two fixed overrides:
//     only ADMIN may edit user accounts regardless of grant level, and
//     tax reads its grant from the products key.
func Evaluate(user sessionentities.AuthenticatedUser, module entities.Module) entities.Decision {
	if !module.IsKnown() {
		return entities.Decision{}
	}

	switch user.Role {
	case sessionentities.RoleAdmin:
		return entities.Decision{HasAccess: true, CanEdit: true}
	case sessionentities.RoleStaff:
		raw, present := user.Permissions[string(module.GrantKey())]
		level := entities.LevelFromGrant(raw, present)
		hasAccess := level != entities.LevelNone
		canEdit := level == entities.LevelEdit && module != entities.ModuleUsers && hasAccess
		return entities.Decision{HasAccess: hasAccess, CanEdit: canEdit}
	default:
		// CUSTOMER and anything unrecognized.
		return entities.Decision{}
	}
}
