package middleware

import (
	"strings"

	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key under which Authenticate stores
// the session's user ID.
const ContextKeyUserID = "userID"

// AuthMiddleware validates the Bearer session token issued by login.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.ParseSessionToken(tokenString)
		if err != nil {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired session token")
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
