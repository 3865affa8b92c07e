package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/tenant/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

// TenantHandler covers both sides of tenant management: the superadmin
// console (list, suspend, reactivate) and the tenant's own profile.
type TenantHandler struct {
	listUseCase       *usecases.ListTenantsUseCase
	suspendUseCase    *usecases.SuspendTenantUseCase
	reactivateUseCase *usecases.ReactivateTenantUseCase
	getProfileUseCase *usecases.GetTenantProfileUseCase
	updateProfileUC   *usecases.UpdateTenantProfileUseCase
	logger            logger.Interface
}

func NewTenantHandler(
	listUC *usecases.ListTenantsUseCase,
	suspendUC *usecases.SuspendTenantUseCase,
	reactivateUC *usecases.ReactivateTenantUseCase,
	getProfileUC *usecases.GetTenantProfileUseCase,
	updateProfileUC *usecases.UpdateTenantProfileUseCase,
	logger logger.Interface,
) *TenantHandler {
	return &TenantHandler{
		listUseCase:       listUC,
		suspendUseCase:    suspendUC,
		reactivateUseCase: reactivateUC,
		getProfileUseCase: getProfileUC,
		updateProfileUC:   updateProfileUC,
		logger:            logger,
	}
}

type UpdateTenantProfileRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *TenantHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUseCase.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// Suspend locks a tenant out. Every request from its users fails the tenant
// guard until the tenant is reactivated; data is kept.
func (h *TenantHandler) Suspend(c *gin.Context) {
	tenantID, err := utils.ParseUintParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.suspendUseCase.Execute(c.Request.Context(), tenantID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"tenant_id": tenantID, "is_active": false})
}

func (h *TenantHandler) Reactivate(c *gin.Context) {
	tenantID, err := utils.ParseUintParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reactivateUseCase.Execute(c.Request.Context(), tenantID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, gin.H{"tenant_id": tenantID, "is_active": true})
}

func (h *TenantHandler) GetProfile(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	profile, err := h.getProfileUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, profile)
}

func (h *TenantHandler) UpdateProfile(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req UpdateTenantProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateTenantProfileCommand{
		TenantID: tenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, profile)
}
