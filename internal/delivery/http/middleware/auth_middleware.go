package middleware

import (
	"errors"
	"strings"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/user"
	"hireboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxCallerKey = "caller"

// CallerFromCtx returns the caller resolved by the auth middleware, or an
// anonymous caller when the route skipped authentication.
func CallerFromCtx(c fiber.Ctx) authz.Caller {
	if caller, ok := c.Locals(CtxCallerKey).(authz.Caller); ok {
		return caller
	}
	return authz.Anonymous()
}

type AuthMiddleware struct {
	jwt   jwt.Service
	users user.Repository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users user.Repository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

// Middleware rejects requests without a valid access token. The caller's role
// is read back from the store on every request so revocations and role changes
// take effect immediately.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, appErr := m.resolveCaller(c)
		if appErr != nil {
			return appErr
		}

		c.Locals(CtxCallerKey, caller)
		return c.Next()
	}
}

// Optional resolves the caller when a token is present but lets anonymous
// requests through. A malformed or expired token is still rejected rather
// than silently downgraded.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if strings.TrimSpace(c.Get("Authorization")) == "" {
			c.Locals(CtxCallerKey, authz.Anonymous())
			return c.Next()
		}

		caller, appErr := m.resolveCaller(c)
		if appErr != nil {
			return appErr
		}

		c.Locals(CtxCallerKey, caller)
		return c.Next()
	}
}

func (m *AuthMiddleware) resolveCaller(c fiber.Ctx) (authz.Caller, *AppError) {
	token, ok := bearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return authz.Caller{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return authz.Caller{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return authz.Caller{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}

	if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
		return authz.Caller{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
	}

	usr, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return authz.Caller{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}
		return authz.Caller{}, NewAppError(fiber.StatusServiceUnavailable, "", nil, err)
	}

	return authz.Caller{ID: usr.ID, Role: usr.Role}, nil
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
