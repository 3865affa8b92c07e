package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/kost/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type RoomTypeHandler struct {
	createUseCase *usecases.CreateRoomTypeUseCase
	listUseCase   *usecases.ListRoomTypesUseCase
	updateUseCase *usecases.UpdateRoomTypeUseCase
	deleteUseCase *usecases.DeleteRoomTypeUseCase
	logger        logger.Interface
}

func NewRoomTypeHandler(
	createUC *usecases.CreateRoomTypeUseCase,
	listUC *usecases.ListRoomTypesUseCase,
	updateUC *usecases.UpdateRoomTypeUseCase,
	deleteUC *usecases.DeleteRoomTypeUseCase,
	logger logger.Interface,
) *RoomTypeHandler {
	return &RoomTypeHandler{
		createUseCase: createUC,
		listUseCase:   listUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		logger:        logger,
	}
}

type RoomTypeRequest struct {
	Name       string   `json:"name" binding:"required,min=2,max=50"`
	BasePrice  uint64   `json:"base_price" binding:"required"`
	Facilities []string `json:"facilities"`
}

func (h *RoomTypeHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateRoomTypeCommand{
		TenantID:   tenantID,
		Name:       req.Name,
		BasePrice:  req.BasePrice,
		Facilities: req.Facilities,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "room type created")
}

func (h *RoomTypeHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	roomTypes, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, roomTypes)
}

func (h *RoomTypeHandler) Update(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	roomTypeID, err := utils.ParseUintParam(c, "id", "room type")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateRoomTypeCommand{
		TenantID:   tenantID,
		RoomTypeID: roomTypeID,
		Name:       req.Name,
		BasePrice:  req.BasePrice,
		Facilities: req.Facilities,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *RoomTypeHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	roomTypeID, err := utils.ParseUintParam(c, "id", "room type")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), tenantID, roomTypeID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
