package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"
)

type mockJWT struct {
	validateOut jwt.Claims
	validateErr error
}

func (m mockJWT) GenerateAccessToken(userID int64) (string, error)  { return "access", nil }
func (m mockJWT) GenerateRefreshToken(userID int64) (string, error) { return "refresh", nil }
func (m mockJWT) ValidateToken(string) (jwt.Claims, error)          { return m.validateOut, m.validateErr }
func (m mockJWT) IsRefreshToken(c jwt.Claims) bool                  { return c.TokenType == jwt.TokenTypeRefresh }

func TestAuthUsecase_Register_Success(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]user.User{}}
	uc := NewAuthUsecase(repo, mockJWT{}, "")

	usr, tokens, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "correcthorse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", usr.Email)
	}
	if usr.Role != user.RoleJobSeeker {
		t.Fatalf("expected default job_seeker role, got %s", usr.Role)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if tokens.Access == "" || tokens.Refresh == "" {
		t.Fatalf("expected token pair")
	}

	created := repo.created[0]
	if !strings.HasPrefix(created.OpenID, "local:") {
		t.Fatalf("expected synthetic local open id, got %q", created.OpenID)
	}
	if created.LoginMethod != "password" {
		t.Fatalf("expected password login method, got %q", created.LoginMethod)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correcthorse")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthUsecase_Register_Validation(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{byEmail: map[string]user.User{}}, mockJWT{}, "")

	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: "nope", Password: "longenough"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad email: expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "short"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short password: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]user.User{
		"taken@example.com": {ID: 1, Email: "taken@example.com"},
	}}
	uc := NewAuthUsecase(repo, mockJWT{}, "")

	_, _, err := uc.Register(context.Background(), RegisterInput{Email: "taken@example.com", Password: "longenough"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("rightpassword"), bcrypt.MinCost)
	repo := &mockUserRepo{byEmail: map[string]user.User{
		"ada@example.com": {ID: 1, Email: "ada@example.com", OpenID: "local:x", PasswordHash: string(hash)},
	}}
	uc := NewAuthUsecase(repo, mockJWT{}, "")

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email must look identical, got %v", err)
	}
}

func TestAuthUsecase_Login_ExternalAccountHasNoPassword(t *testing.T) {
	repo := &mockUserRepo{byEmail: map[string]user.User{
		"sso@example.com": {ID: 1, Email: "sso@example.com", OpenID: "ext:9"},
	}}
	uc := NewAuthUsecase(repo, mockJWT{}, "")

	_, _, err := uc.Login(context.Background(), LoginInput{Email: "sso@example.com", Password: "anything"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_Session_OwnerPromotion(t *testing.T) {
	repo := &mockUserRepo{upsertOut: user.User{ID: 1, OpenID: "ext:owner", Role: user.RoleAdmin}}
	uc := NewAuthUsecase(repo, mockJWT{}, "ext:owner")

	if _, _, err := uc.Session(context.Background(), SessionInput{OpenID: "ext:owner", Name: "Root"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	up := repo.upserts[0]
	if up.Role == nil || *up.Role != user.RoleAdmin {
		t.Fatalf("owner identity must be promoted to admin, got %+v", up.Role)
	}
}

func TestAuthUsecase_Session_RegularIdentityNotPromoted(t *testing.T) {
	repo := &mockUserRepo{upsertOut: user.User{ID: 2, OpenID: "ext:someone"}}
	uc := NewAuthUsecase(repo, mockJWT{}, "ext:owner")

	if _, _, err := uc.Session(context.Background(), SessionInput{OpenID: "ext:someone"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.upserts[0].Role != nil {
		t.Fatalf("non-owner session must not set a role")
	}
}

func TestAuthUsecase_Session_RequiresOpenID(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, mockJWT{}, "")

	if _, _, err := uc.Session(context.Background(), SessionInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Refresh_RejectsAccessToken(t *testing.T) {
	repo := &mockUserRepo{users: map[int64]user.User{1: {ID: 1}}}
	uc := NewAuthUsecase(repo, mockJWT{validateOut: jwt.Claims{UserID: 1, TokenType: jwt.TokenTypeAccess}}, "")

	_, err := uc.Refresh(context.Background(), "some-token")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_Refresh_Expired(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, mockJWT{validateErr: jwt.ErrTokenExpired}, "")

	_, err := uc.Refresh(context.Background(), "stale")
	if !errors.Is(err, ErrRefreshTokenExpired) {
		t.Fatalf("expected ErrRefreshTokenExpired, got %v", err)
	}
}

func TestAuthUsecase_Refresh_DeletedUser(t *testing.T) {
	repo := &mockUserRepo{users: map[int64]user.User{}}
	uc := NewAuthUsecase(repo, mockJWT{validateOut: jwt.Claims{UserID: 9, TokenType: jwt.TokenTypeRefresh}}, "")

	_, err := uc.Refresh(context.Background(), "orphan")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthUsecase_UpdateOwnRole(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewAuthUsecase(repo, mockJWT{}, "")

	if err := uc.UpdateOwnRole(context.Background(), seekerCaller(5), "recruiter"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.roleByID[5] != user.RoleRecruiter {
		t.Fatalf("expected recruiter role persisted, got %s", repo.roleByID[5])
	}

	if err := uc.UpdateOwnRole(context.Background(), seekerCaller(5), "admin"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("admin must not be self-assignable, got %v", err)
	}
	if err := uc.UpdateOwnRole(context.Background(), seekerCaller(5), "wizard"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown role: expected ErrInvalidInput, got %v", err)
	}
}
