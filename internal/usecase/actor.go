package usecase

import "hacktheshell/internal/entity"

// Actor is the authenticated caller of a mutating operation.
type Actor struct {
	UserID string
	Role   entity.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanModify reports whether the actor owns the resource or is an admin.
func (a Actor) CanModify(ownerID string) bool {
	return a.IsAdmin() || (a.UserID != "" && a.UserID == ownerID)
}
