// Package authz is the authorization guard: pure allow/deny decisions over a
// resolved caller identity. It never touches storage; callers pass in the
// owner id of any record they already loaded.
package authz

import (
	"errors"

	"hireboard/internal/domain/user"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// Caller is the resolved identity executing a procedure. The zero value is
// the anonymous caller.
type Caller struct {
	ID   int64
	Role user.Role
}

func Anonymous() Caller {
	return Caller{}
}

func (c Caller) Authenticated() bool {
	return c.ID != 0
}

func (c Caller) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}

// RequireRole is the role gate: the caller must hold one of the given roles.
// Admin satisfies every gate. Evaluated before any ownership decision.
func RequireRole(c Caller, roles ...user.Role) error {
	if !c.Authenticated() {
		return ErrUnauthenticated
	}
	if c.IsAdmin() {
		return nil
	}
	for _, r := range roles {
		if c.Role == r {
			return nil
		}
	}
	return ErrForbidden
}

// RequireOwner is the ownership gate for mutations on existing records: the
// caller must own the record unless it is an admin. Resource existence must
// already have been established; a missing target is NOT_FOUND, decided
// before this gate runs.
func RequireOwner(c Caller, ownerID int64) error {
	if !c.Authenticated() {
		return ErrUnauthenticated
	}
	if c.IsAdmin() {
		return nil
	}
	if c.ID != ownerID {
		return ErrForbidden
	}
	return nil
}
