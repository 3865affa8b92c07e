package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/kost/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type RoomHandler struct {
	createUseCase      *usecases.CreateRoomUseCase
	listUseCase        *usecases.ListRoomsUseCase
	updateUseCase      *usecases.UpdateRoomUseCase
	maintenanceUseCase *usecases.SetRoomMaintenanceUseCase
	deleteUseCase      *usecases.DeleteRoomUseCase
	logger             logger.Interface
}

func NewRoomHandler(
	createUC *usecases.CreateRoomUseCase,
	listUC *usecases.ListRoomsUseCase,
	updateUC *usecases.UpdateRoomUseCase,
	maintenanceUC *usecases.SetRoomMaintenanceUseCase,
	deleteUC *usecases.DeleteRoomUseCase,
	logger logger.Interface,
) *RoomHandler {
	return &RoomHandler{
		createUseCase:      createUC,
		listUseCase:        listUC,
		updateUseCase:      updateUC,
		maintenanceUseCase: maintenanceUC,
		deleteUseCase:      deleteUC,
		logger:             logger,
	}
}

type CreateRoomRequest struct {
	KostID     uint   `json:"kost_id" binding:"required"`
	RoomTypeID *uint  `json:"room_type_id"`
	RoomNumber string `json:"room_number" binding:"required,max=20"`
	Price      uint64 `json:"price"`
}

type UpdateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,max=20"`
	Price      uint64 `json:"price"`
	RoomTypeID *uint  `json:"room_type_id"`
}

type SetMaintenanceRequest struct {
	Maintenance *bool `json:"maintenance" binding:"required"`
}

func (h *RoomHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateRoomCommand{
		TenantID:   tenantID,
		KostID:     req.KostID,
		RoomTypeID: req.RoomTypeID,
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, created, "room created")
}

// List returns the tenant's rooms, optionally filtered by kost via the
// kost_id query parameter.
func (h *RoomHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var kostID *uint
	if raw := c.Query("kost_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid kost_id")
			return
		}
		id := uint(parsed)
		kostID = &id
	}

	rooms, err := h.listUseCase.Execute(c.Request.Context(), tenantID, kostID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, rooms)
}

func (h *RoomHandler) Update(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateRoomCommand{
		TenantID:   tenantID,
		RoomID:     roomID,
		RoomNumber: req.RoomNumber,
		Price:      req.Price,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

// SetMaintenance flips a room in or out of maintenance. An occupied room
// cannot be taken down for maintenance.
func (h *RoomHandler) SetMaintenance(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req SetMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.maintenanceUseCase.Execute(c.Request.Context(), tenantID, roomID, *req.Maintenance)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	roomID, err := utils.ParseUintParam(c, "id", "room")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), tenantID, roomID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
