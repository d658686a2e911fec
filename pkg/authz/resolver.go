package authz

// AccessBinding grants a single permission on a single collection. Bindings
// are scoped to the named resource only; they never propagate to descendant
// collections.
type AccessBinding struct {
	ResourceID string     `json:"resourceId"`
	Permission Permission `json:"permission"`
}

// CanPerform decides whether a principal carrying the given role and bindings
// may perform action on a resource. For ActionCreate the resource is the
// parent collection id; an empty resource id means root-level creation, where
// only the role gate applies since there is no parent to bind against.
//
// Pure decision function: no side effects, no I/O.
func CanPerform(role Role, bindings []AccessBinding, action Action, resourceID string) bool {
	switch action {
	case ActionCreate:
		if !role.CanCreateCollections() {
			return false
		}
		if resourceID == "" || role == RoleAdmin {
			return true
		}
		return hasBinding(bindings, resourceID, PermissionCreateCollection)
	case ActionRead:
		if role == RoleAdmin {
			return true
		}
		return hasBinding(bindings, resourceID, PermissionLimitedView)
	case ActionDelete:
		return role == RoleAdmin
	}
	return false
}

func hasBinding(bindings []AccessBinding, resourceID string, permission Permission) bool {
	for _, b := range bindings {
		if b.ResourceID == resourceID && b.Permission == permission {
			return true
		}
	}
	return false
}
