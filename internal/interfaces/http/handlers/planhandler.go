package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/subscription/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

// PlanHandler exposes the plan catalog. Listing is public so the pricing
// page can render without credentials; mutations are superadmin-only and
// guarded at the route level.
type PlanHandler struct {
	createUseCase *usecases.CreatePlanUseCase
	updateUseCase *usecases.UpdatePlanUseCase
	listUseCase   *usecases.ListPlansUseCase
	getUseCase    *usecases.GetPlanUseCase
	deleteUseCase *usecases.DeletePlanUseCase
	logger        logger.Interface
}

func NewPlanHandler(
	createUC *usecases.CreatePlanUseCase,
	updateUC *usecases.UpdatePlanUseCase,
	listUC *usecases.ListPlansUseCase,
	getUC *usecases.GetPlanUseCase,
	deleteUC *usecases.DeletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		listUseCase:   listUC,
		getUseCase:    getUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type CreatePlanRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=50"`
	Price            uint64 `json:"price"`
	MaxRooms         int    `json:"max_rooms" binding:"required,min=1"`
	MaxStaff         int    `json:"max_staff" binding:"required,min=1"`
	MaxAPICalls      int    `json:"max_api_calls"`
	AllowMultiBranch bool   `json:"allow_multi_branch"`
	AllowFinance     bool   `json:"allow_finance"`
	AllowExport      bool   `json:"allow_export"`
}

type UpdatePlanRequest struct {
	Name             *string `json:"name"`
	Price            *uint64 `json:"price"`
	MaxRooms         *int    `json:"max_rooms"`
	MaxStaff         *int    `json:"max_staff"`
	MaxAPICalls      *int    `json:"max_api_calls"`
	AllowMultiBranch *bool   `json:"allow_multi_branch"`
	AllowFinance     *bool   `json:"allow_finance"`
	AllowExport      *bool   `json:"allow_export"`
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, plans)
}

func (h *PlanHandler) Get(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.getUseCase.Execute(c.Request.Context(), planID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, plan)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:             req.Name,
		Price:            req.Price,
		MaxRooms:         req.MaxRooms,
		MaxStaff:         req.MaxStaff,
		MaxAPICalls:      req.MaxAPICalls,
		AllowMultiBranch: req.AllowMultiBranch,
		AllowFinance:     req.AllowFinance,
		AllowExport:      req.AllowExport,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, plan, "plan created")
}

func (h *PlanHandler) Update(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:           planID,
		Name:             req.Name,
		Price:            req.Price,
		MaxRooms:         req.MaxRooms,
		MaxStaff:         req.MaxStaff,
		MaxAPICalls:      req.MaxAPICalls,
		AllowMultiBranch: req.AllowMultiBranch,
		AllowFinance:     req.AllowFinance,
		AllowExport:      req.AllowExport,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, plan)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), planID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
