package user

import (
	"fmt"
	"time"
)

// Role is the closed set of caller roles. Admin satisfies every role gate.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("invalid role %q", s)
	}
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID           int64
	OpenID       string
	Name         string
	Email        string
	LoginMethod  string
	PasswordHash string
	Role         Role
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Upsert carries the fields an external identity exchange may set. Nil
// pointers leave the stored value untouched.
type Upsert struct {
	OpenID      string
	Name        *string
	Email       *string
	LoginMethod *string
	Role        *Role
}
