package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/export/usecases"
	"kostera/internal/shared/logger"
)

// ExportHandler streams CSV downloads. It sits behind the allowExport
// feature gate.
type ExportHandler struct {
	exportRoomsUC    *usecases.ExportRoomsCSVUseCase
	exportInvoicesUC *usecases.ExportInvoicesCSVUseCase
	logger           logger.Interface
}

func NewExportHandler(
	exportRoomsUC *usecases.ExportRoomsCSVUseCase,
	exportInvoicesUC *usecases.ExportInvoicesCSVUseCase,
	logger logger.Interface,
) *ExportHandler {
	return &ExportHandler{
		exportRoomsUC:    exportRoomsUC,
		exportInvoicesUC: exportInvoicesUC,
		logger:           logger,
	}
}

func (h *ExportHandler) ExportRooms(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	result, err := h.exportRoomsUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *ExportHandler) ExportInvoices(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	result, err := h.exportInvoicesUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	h.sendFile(c, result)
}

func (h *ExportHandler) sendFile(c *gin.Context, result *usecases.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
