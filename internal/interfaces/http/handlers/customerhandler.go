package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/customer/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type CustomerHandler struct {
	createUseCase *usecases.CreateCustomerUseCase
	listUseCase   *usecases.ListCustomersUseCase
	updateUseCase *usecases.UpdateCustomerUseCase
	deleteUseCase *usecases.DeleteCustomerUseCase
	logger        logger.Interface
}

func NewCustomerHandler(
	createUC *usecases.CreateCustomerUseCase,
	listUC *usecases.ListCustomersUseCase,
	updateUC *usecases.UpdateCustomerUseCase,
	deleteUC *usecases.DeleteCustomerUseCase,
	logger logger.Interface,
) *CustomerHandler {
	return &CustomerHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CustomerRequest struct {
	FullName  string `json:"full_name" binding:"required,min=2,max=100"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	KTPNumber string `json:"ktp_number"`
	Address   string `json:"address"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateCustomerCommand{
		TenantID:  tenantID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		KTPNumber: req.KTPNumber,
		Address:   req.Address,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "customer created")
}

func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	customers, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, customers)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	customerID, err := utils.ParseUintParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateCustomerCommand{
		TenantID:   tenantID,
		CustomerID: customerID,
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		KTPNumber:  req.KTPNumber,
		Address:    req.Address,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	customerID, err := utils.ParseUintParam(c, "id", "customer")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), tenantID, customerID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
