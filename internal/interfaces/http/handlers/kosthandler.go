package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/kost/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type KostHandler struct {
	createUseCase *usecases.CreateKostUseCase
	listUseCase   *usecases.ListKostsUseCase
	getUseCase    *usecases.GetKostUseCase
	updateUseCase *usecases.UpdateKostUseCase
	deleteUseCase *usecases.DeleteKostUseCase
	logger        logger.Interface
}

func NewKostHandler(
	createUC *usecases.CreateKostUseCase,
	listUC *usecases.ListKostsUseCase,
	getUC *usecases.GetKostUseCase,
	updateUC *usecases.UpdateKostUseCase,
	deleteUC *usecases.DeleteKostUseCase,
	logger logger.Interface,
) *KostHandler {
	return &KostHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreateKostRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
}

type UpdateKostRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description"`
}

func (h *KostHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CreateKostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateKostCommand{
		TenantID:    tenantID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "kost created")
}

func (h *KostHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	kosts, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, kosts)
}

func (h *KostHandler) Get(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	kostID, err := utils.ParseUintParam(c, "id", "kost")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	found, err := h.getUseCase.Execute(c.Request.Context(), tenantID, kostID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, found)
}

func (h *KostHandler) Update(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	kostID, err := utils.ParseUintParam(c, "id", "kost")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateKostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateKostCommand{
		TenantID:    tenantID,
		KostID:      kostID,
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *KostHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	kostID, err := utils.ParseUintParam(c, "id", "kost")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), tenantID, kostID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
