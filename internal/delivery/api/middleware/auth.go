package middleware

import (
	"strings"

	"masjidcast/internal/delivery/api/response"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"

	// AccessTokenCookie lets browser players authenticate segment requests.
	AccessTokenCookie = "access_token"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		setIdentity(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate records the caller when a valid token is present and
// passes anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := extractToken(c); ok {
			if claims, err := m.tokenSvc.ValidateToken(tokenString); err == nil {
				setIdentity(c, claims)
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !roles.Contains(requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

func setIdentity(c echo.Context, claims *service.Claims) {
	c.Set(contextKeyUserID, claims.UserID)
	c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithUserID(req.Context(), claims.UserID)))
}

// extractToken reads a Bearer header first, then the access_token cookie.
func extractToken(c echo.Context) (string, bool) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return "", false
		}

		return tokenString, true
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
