package shared

import (
	"points-rewards/internal/domain/account"

	"github.com/google/uuid"
)

// Principal is the authenticated caller as seen by use cases.
type Principal struct {
	ID     uuid.UUID
	UserID int64
	Email  string
	Role   account.Role
}

func (p Principal) Can(perm account.Permission) bool {
	return p.Role.Can(perm)
}

func (p Principal) IsAdmin() bool {
	return p.Role.Can(account.PermAdmin)
}
