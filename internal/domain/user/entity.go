package user

import "github.com/google/uuid"

// Actor is the authenticated caller. Users themselves are managed elsewhere; the engine only
// sees the id and role carried by the bearer token.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	if id == uuid.Nil {
		return Actor{}, ErrMissingActorID
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage reports whether the actor may act on something owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.ID == ownerID
}
