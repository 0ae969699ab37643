package authz

import (
	"errors"
	"testing"

	"hireboard/internal/domain/user"
)

func TestRequireRole(t *testing.T) {
	recruiter := Caller{ID: 1, Role: user.RoleRecruiter}
	seeker := Caller{ID: 2, Role: user.RoleJobSeeker}
	admin := Caller{ID: 3, Role: user.RoleAdmin}

	if err := RequireRole(Anonymous(), user.RoleRecruiter); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}
	if err := RequireRole(recruiter, user.RoleRecruiter); err != nil {
		t.Fatalf("matching role: unexpected err %v", err)
	}
	if err := RequireRole(seeker, user.RoleRecruiter); !errors.Is(err, ErrForbidden) {
		t.Fatalf("wrong role: expected ErrForbidden, got %v", err)
	}
	if err := RequireRole(admin, user.RoleRecruiter); err != nil {
		t.Fatalf("admin passes every gate, got %v", err)
	}
	if err := RequireRole(seeker, user.RoleRecruiter, user.RoleJobSeeker); err != nil {
		t.Fatalf("multi-role gate: unexpected err %v", err)
	}

	// No roles means admin-only.
	if err := RequireRole(recruiter); !errors.Is(err, ErrForbidden) {
		t.Fatalf("empty gate: expected ErrForbidden, got %v", err)
	}
	if err := RequireRole(admin); err != nil {
		t.Fatalf("empty gate admin: unexpected err %v", err)
	}
}

func TestRequireOwner(t *testing.T) {
	owner := Caller{ID: 7, Role: user.RoleRecruiter}
	stranger := Caller{ID: 8, Role: user.RoleRecruiter}
	admin := Caller{ID: 9, Role: user.RoleAdmin}

	if err := RequireOwner(Anonymous(), 7); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}
	if err := RequireOwner(owner, 7); err != nil {
		t.Fatalf("owner: unexpected err %v", err)
	}
	if err := RequireOwner(stranger, 7); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger: expected ErrForbidden, got %v", err)
	}
	if err := RequireOwner(admin, 7); err != nil {
		t.Fatalf("admin bypasses ownership, got %v", err)
	}
}
