package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"flyingpot/internal/domain/entity"
	"flyingpot/internal/domain/service"
)

const (
	// ContextKeyUserID is where Authenticate stores the caller's id.
	ContextKeyUserID = "userID"
	// ContextKeyKind is where Authenticate stores the caller's account kind.
	ContextKeyKind = "kind"
	// TokenCookieName is the session cookie set at sign-in.
	TokenCookieName = "token"
)

// AuthMiddleware validates session tokens. The storefront sends the token
// either as a Bearer header or in the session cookie.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the session token and stores the caller's identity
// on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing session token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyKind, claims.Kind)

		return next(c)
	}
}

// RequireAdmin rejects callers whose account kind is not admin. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		kind, ok := c.Get(ContextKeyKind).(string)
		if !ok || kind != entity.RoleAdmin.String() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: admin only"})
		}

		return next(c)
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader != "" {
		if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader {
			return tokenString
		}
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}
