package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/booking/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type BookingHandler struct {
	createUseCase       *usecases.CreateBookingUseCase
	removeUseCase       *usecases.RemoveBookingUseCase
	listUseCase         *usecases.ListBookingsUseCase
	listInvoicesUseCase *usecases.ListInvoicesUseCase
	payInvoiceUseCase   *usecases.PayInvoiceUseCase
	logger              logger.Interface
}

func NewBookingHandler(
	createUC *usecases.CreateBookingUseCase,
	removeUC *usecases.RemoveBookingUseCase,
	listUC *usecases.ListBookingsUseCase,
	listInvoicesUC *usecases.ListInvoicesUseCase,
	payInvoiceUC *usecases.PayInvoiceUseCase,
	logger logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createUseCase:       createUC,
		removeUseCase:       removeUC,
		listUseCase:         listUC,
		listInvoicesUseCase: listInvoicesUC,
		payInvoiceUseCase:   payInvoiceUC,
		logger:              logger,
	}
}

type CreateBookingRequest struct {
	RoomID        uint       `json:"room_id" binding:"required"`
	CustomerID    uint       `json:"customer_id" binding:"required"`
	StartDate     *time.Time `json:"start_date"`
	DurationMonth int        `json:"duration_month" binding:"omitempty,min=1"`
}

type PayInvoiceRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// Create places a customer into a room and issues the first invoice in the
// same transaction.
func (h *BookingHandler) Create(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.CreateBookingCommand{
		TenantID:      tenantID,
		RoomID:        req.RoomID,
		CustomerID:    req.CustomerID,
		DurationMonth: req.DurationMonth,
	}
	if req.StartDate != nil {
		cmd.StartDate = *req.StartDate
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "booking created")
}

func (h *BookingHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	bookings, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, bookings)
}

// Remove cancels a booking and releases its room.
func (h *BookingHandler) Remove(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	bookingID, err := utils.ParseUintParam(c, "id", "booking")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.removeUseCase.Execute(c.Request.Context(), tenantID, bookingID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *BookingHandler) ListInvoices(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	invoices, err := h.listInvoicesUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, invoices)
}

func (h *BookingHandler) PayInvoice(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	invoiceID, err := utils.ParseUintParam(c, "id", "invoice")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// body is optional, payment method defaults to cash
	var req PayInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	invoice, err := h.payInvoiceUseCase.Execute(c.Request.Context(), usecases.PayInvoiceCommand{
		TenantID:      tenantID,
		InvoiceID:     invoiceID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, invoice)
}
