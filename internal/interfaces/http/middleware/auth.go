package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kostera/internal/infrastructure/auth"
	"kostera/internal/shared/constants"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the caller's identity in
// the gin context. TenantID stays unset for superadmins.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		roles := make([]string, 0, len(claims.Roles))
		for _, role := range claims.Roles {
			roles = append(roles, role.String())
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		if claims.TenantID != nil {
			c.Set(constants.ContextKeyTenantID, *claims.TenantID)
		}
		c.Set(constants.ContextKeyUserRoles, roles)

		c.Next()
	}
}

// TenantIDFromContext returns the caller's tenant ID, or false for
// superadmins and unauthenticated requests.
func TenantIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyTenantID)
	if !exists {
		return 0, false
	}
	tenantID, ok := value.(uint)
	return tenantID, ok
}

// RolesFromContext returns the caller's role names.
func RolesFromContext(c *gin.Context) []string {
	value, exists := c.Get(constants.ContextKeyUserRoles)
	if !exists {
		return nil
	}
	roles, _ := value.([]string)
	return roles
}

// UserIDFromContext returns the authenticated user's ID.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
