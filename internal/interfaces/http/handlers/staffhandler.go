package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/staff/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type StaffHandler struct {
	createUseCase *usecases.CreateStaffUseCase
	listUseCase   *usecases.ListStaffUseCase
	removeUseCase *usecases.RemoveStaffUseCase
	logger        logger.Interface
}

func NewStaffHandler(
	createUC *usecases.CreateStaffUseCase,
	listUC *usecases.ListStaffUseCase,
	removeUC *usecases.RemoveStaffUseCase,
	logger logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		removeUseCase: removeUC,
		logger:        logger,
	}
}

type CreateStaffRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateStaffCommand{
		TenantID: tenantID,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "staff created")
}

func (h *StaffHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	staff, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, staff)
}

func (h *StaffHandler) Remove(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	userID, err := utils.ParseUintParam(c, "id", "staff")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), tenantID, userID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
