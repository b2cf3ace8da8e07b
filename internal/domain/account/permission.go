package account

type Permission string

const (
	PermRead           Permission = "read"
	PermWrite          Permission = "write"
	PermDelete         Permission = "delete"
	PermAdmin          Permission = "admin"
	PermManageBenefits Permission = "manage_benefits"
)

var rolePermissions = map[Role]map[Permission]struct{}{
	RoleAdmin: {
		PermRead:           {},
		PermWrite:          {},
		PermDelete:         {},
		PermAdmin:          {},
		PermManageBenefits: {},
	},
	RoleManager: {
		PermRead:           {},
		PermWrite:          {},
		PermManageBenefits: {},
	},
	RoleUser: {
		PermRead:  {},
		PermWrite: {},
	},
	RoleViewer: {
		PermRead: {},
	},
}

// Can is the only authorization predicate; unknown roles have no permissions.
func (r Role) Can(p Permission) bool {
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = perms[p]
	return ok
}

// Permissions lists the role's permissions in a stable order.
func (r Role) Permissions() []Permission {
	ordered := []Permission{PermRead, PermWrite, PermDelete, PermAdmin, PermManageBenefits}
	out := make([]Permission, 0, len(ordered))
	for _, p := range ordered {
		if r.Can(p) {
			out = append(out, p)
		}
	}
	return out
}
