package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

// LimitChecker mirrors the subscription CheckLimitUseCase.
type LimitChecker interface {
	Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error
}

// FeatureChecker mirrors the subscription CheckFeatureUseCase.
type FeatureChecker interface {
	Execute(ctx context.Context, tenantID uint, feature vo.Feature) error
}

type PlanGuard struct {
	limitChecker   LimitChecker
	featureChecker FeatureChecker
	logger         logger.Interface
}

func NewPlanGuard(limitChecker LimitChecker, featureChecker FeatureChecker, logger logger.Interface) *PlanGuard {
	return &PlanGuard{
		limitChecker:   limitChecker,
		featureChecker: featureChecker,
		logger:         logger,
	}
}

// CheckLimit denies the request when the tenant's live count has reached its
// plan ceiling for the resource. A store failure is a 500, never a denial.
// Superadmins have no tenant and are not limited.
func (g *PlanGuard) CheckLimit(resource vo.LimitResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, ok := TenantIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		if err := g.limitChecker.Execute(c.Request.Context(), tenantID, resource); err != nil {
			g.denyOrFail(c, err)
			return
		}
		c.Next()
	}
}

// RequireFeature denies the request unless the tenant's active plan carries
// the feature flag.
func (g *PlanGuard) RequireFeature(feature vo.Feature) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, ok := TenantIDFromContext(c)
		if !ok {
			c.Next()
			return
		}

		if err := g.featureChecker.Execute(c.Request.Context(), tenantID, feature); err != nil {
			g.denyOrFail(c, err)
			return
		}
		c.Next()
	}
}

func (g *PlanGuard) denyOrFail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, subscription.ErrLimitReached),
		errors.Is(err, subscription.ErrFeatureNotSupported),
		errors.Is(err, subscription.ErrNoActiveSubscription):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		g.logger.Errorw("plan guard check failed", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to verify plan")
	}
	c.Abort()
}
