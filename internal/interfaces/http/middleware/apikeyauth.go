package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/domain/apikey"
	"kostera/internal/domain/subscription"
	"kostera/internal/infrastructure/ratelimit"
	"kostera/internal/shared/constants"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type APIKeyMiddleware struct {
	apiKeyRepo       apikey.APIKeyRepository
	subscriptionRepo subscription.SubscriptionRepository
	planRepo         subscription.PlanRepository
	limiter          ratelimit.APICallLimiter
	logger           logger.Interface
}

func NewAPIKeyMiddleware(
	apiKeyRepo apikey.APIKeyRepository,
	subscriptionRepo subscription.SubscriptionRepository,
	planRepo subscription.PlanRepository,
	limiter ratelimit.APICallLimiter,
	logger logger.Interface,
) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKeyRepo:       apiKeyRepo,
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		limiter:          limiter,
		logger:           logger,
	}
}

// RequireAPIKey authenticates public API calls by the X-Api-Key header and
// enforces the plan's monthly call quota. Revoked keys do not match; a
// tenant without an ACTIVE subscription has no quota at all.
func (m *APIKeyMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(constants.HeaderXAPIKey)
		if rawKey == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing api key")
			c.Abort()
			return
		}

		key, err := m.apiKeyRepo.GetActiveByHash(c.Request.Context(), apikey.HashKey(rawKey))
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid api key")
			c.Abort()
			return
		}

		sub, err := m.subscriptionRepo.GetActiveByTenantID(c.Request.Context(), key.TenantID())
		if err != nil {
			if errors.Is(err, subscription.ErrNoActiveSubscription) {
				utils.ErrorResponse(c, http.StatusForbidden, err.Error())
			} else {
				m.logger.Errorw("failed to resolve subscription for api key", "error", err, "tenant_id", key.TenantID())
				utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify plan")
			}
			c.Abort()
			return
		}
		plan, err := m.planRepo.GetByID(c.Request.Context(), sub.PlanID())
		if err != nil {
			m.logger.Errorw("failed to load plan for api key", "error", err, "tenant_id", key.TenantID())
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify plan")
			c.Abort()
			return
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key.TenantID(), plan.MaxAPICalls())
		if err != nil {
			m.logger.Errorw("api quota check failed", "error", err, "tenant_id", key.TenantID())
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify quota")
			c.Abort()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "monthly api call quota exceeded")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTenantID, key.TenantID())
		c.Next()
	}
}
