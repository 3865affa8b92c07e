package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/shared/authorization"
	"kostera/internal/shared/utils"
)

// RequireRoles passes when any of the caller's roles is in the expanded
// requirement set. TENANT expands to OWNER and STAFF, TENANT_STAFF accepts
// STAFF; SUPERADMIN is never implied.
func RequireRoles(required ...authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := RolesFromContext(c)
		if !authorization.Satisfies(required, roles) {
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
