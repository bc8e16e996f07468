package domain

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller as resolved by the auth layer. The core
// never authenticates; it only receives this identity.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role UserRole
}

// IsAdmin reports whether the actor may run administrative operations.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}
