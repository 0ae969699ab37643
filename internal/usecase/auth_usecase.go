package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// SessionInput is a pre-verified external identity handed over by the auth
// collaborator. OpenID is the stable opaque reference; everything else is
// profile refresh.
type SessionInput struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error)
	Session(ctx context.Context, in SessionInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Me(ctx context.Context, caller authz.Caller) (user.User, error)
	UpdateOwnRole(ctx context.Context, caller authz.Caller, role string) error
}

type Auth struct {
	users       user.Repository
	jwt         jwt.Service
	ownerOpenID string
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, ownerOpenID string) *Auth {
	return &Auth{users: users, jwt: jwtSvc, ownerOpenID: strings.TrimSpace(ownerOpenID)}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, TokenPair{}, invalidInput("invalid email")
	}
	if len(in.Password) < 8 {
		return user.User{}, TokenPair{}, invalidInput("password must be at least 8 characters")
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, TokenPair{}, storageErr(err)
	}
	if exists {
		return user.User{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}

	created, err := u.users.Create(ctx, user.User{
		OpenID:       "local:" + uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		LoginMethod:  "password",
		PasswordHash: string(hash),
		Role:         user.RoleJobSeeker,
	})
	if err != nil {
		return user.User{}, TokenPair{}, storageErr(err)
	}

	pair, err := u.issueTokens(created.ID)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(created), pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return user.User{}, TokenPair{}, storageErr(err)
	}

	if usr.PasswordHash == "" {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, TokenPair{}, ErrInvalidCredentials
	}

	// Stamp last_signed_in without touching profile fields.
	if refreshed, err := u.users.UpsertByOpenID(ctx, user.Upsert{OpenID: usr.OpenID}); err == nil {
		usr = refreshed
	}

	pair, err := u.issueTokens(usr.ID)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

// Session exchanges an externally verified identity for tokens, creating or
// refreshing the user record. The configured owner identity is promoted to
// admin on every exchange.
func (u *Auth) Session(ctx context.Context, in SessionInput) (user.User, TokenPair, error) {
	openID := strings.TrimSpace(in.OpenID)
	if openID == "" {
		return user.User{}, TokenPair{}, invalidInput("open_id is required")
	}

	up := user.Upsert{OpenID: openID}
	if v := strings.TrimSpace(in.Name); v != "" {
		up.Name = &v
	}
	if v := normalizeEmail(in.Email); v != "" {
		up.Email = &v
	}
	if v := strings.TrimSpace(in.LoginMethod); v != "" {
		up.LoginMethod = &v
	}
	if u.ownerOpenID != "" && openID == u.ownerOpenID {
		admin := user.RoleAdmin
		up.Role = &admin
	}

	usr, err := u.users.UpsertByOpenID(ctx, up)
	if err != nil {
		return user.User{}, TokenPair{}, storageErr(err)
	}

	pair, err := u.issueTokens(usr.ID)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return sanitizeUser(usr), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthenticated
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if _, err := u.users.GetByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, storageErr(err)
	}

	return u.issueTokens(claims.UserID)
}

func (u *Auth) Me(ctx context.Context, caller authz.Caller) (user.User, error) {
	if !caller.Authenticated() {
		return user.User{}, ErrUnauthenticated
	}
	usr, err := u.users.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, storageErr(err)
	}
	return sanitizeUser(usr), nil
}

// UpdateOwnRole lets a signed-in user pick a marketplace side. Admin is never
// self-assignable.
func (u *Auth) UpdateOwnRole(ctx context.Context, caller authz.Caller, role string) error {
	if !caller.Authenticated() {
		return ErrUnauthenticated
	}

	r, err := user.ParseRole(role)
	if err != nil {
		return invalidInput("%v", err)
	}
	if r == user.RoleAdmin {
		return invalidInput("role must be job_seeker or recruiter")
	}

	if err := u.users.UpdateRole(ctx, caller.ID, r); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return storageErr(err)
	}
	return nil
}

func (u *Auth) issueTokens(userID int64) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.jwt.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

func sanitizeUser(usr user.User) user.User {
	usr.PasswordHash = ""
	return usr
}
