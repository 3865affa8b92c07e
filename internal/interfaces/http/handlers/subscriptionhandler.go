package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/subscription/usecases"
	"kostera/internal/domain/subscription"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type SubscriptionHandler struct {
	currentPlanUseCase getCurrentPlanUseCase
	assignPlanUseCase  assignPlanUseCase
	logger             logger.Interface
}

func NewSubscriptionHandler(
	currentPlanUC getCurrentPlanUseCase,
	assignPlanUC assignPlanUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		currentPlanUseCase: currentPlanUC,
		assignPlanUseCase:  assignPlanUC,
		logger:             logger,
	}
}

type AssignPlanRequest struct {
	PlanName string `json:"plan_name" binding:"required"`
}

// CurrentPlan returns the tenant's active plan with live usage counts. A
// tenant without an ACTIVE subscription gets a null body, not an error;
// denial is the guards' job, not this read's.
func (h *SubscriptionHandler) CurrentPlan(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	current, err := h.currentPlanUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		if errors.Is(err, subscription.ErrNoActiveSubscription) {
			utils.OKResponse(c, nil)
			return
		}
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, current)
}

// Upgrade switches the calling tenant onto the named plan. Owner only.
func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.assignPlanUseCase.Execute(c.Request.Context(), usecases.AssignPlanCommand{
		TenantID: tenantID,
		PlanName: req.PlanName,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	h.logger.Infow("plan upgraded", "tenant_id", tenantID, "plan", req.PlanName)
	utils.CreatedResponse(c, sub, "subscription activated")
}

// AssignPlan puts a tenant on a plan. Superadmin only; the tenant is the
// path parameter, not the caller.
func (h *SubscriptionHandler) AssignPlan(c *gin.Context) {
	tenantID, err := utils.ParseUintParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.assignPlanUseCase.Execute(c.Request.Context(), usecases.AssignPlanCommand{
		TenantID: tenantID,
		PlanName: req.PlanName,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	h.logger.Infow("plan assigned", "tenant_id", tenantID, "plan", req.PlanName)
	utils.CreatedResponse(c, sub, "subscription activated")
}
