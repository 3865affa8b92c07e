package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/domain/tenant"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type TenantGuard struct {
	tenantRepo tenant.TenantRepository
	logger     logger.Interface
}

func NewTenantGuard(tenantRepo tenant.TenantRepository, logger logger.Interface) *TenantGuard {
	return &TenantGuard{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// RequireTenant ensures the caller belongs to an active tenant. Superadmins
// bypass the check entirely. A suspended tenant turns every request away
// regardless of role.
func (g *TenantGuard) RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if authorization.HasRole(RolesFromContext(c), authorization.RoleSuperadmin) {
			c.Next()
			return
		}

		tenantID, ok := TenantIDFromContext(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusForbidden, tenant.ErrTenantRequired.Error())
			c.Abort()
			return
		}

		t, err := g.tenantRepo.GetByID(c.Request.Context(), tenantID)
		if err != nil {
			g.logger.Errorw("failed to load tenant for guard", "error", err, "tenant_id", tenantID)
			utils.ErrorResponse(c, http.StatusForbidden, tenant.ErrTenantRequired.Error())
			c.Abort()
			return
		}
		if !t.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, tenant.ErrTenantSuspended.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
