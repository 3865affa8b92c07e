package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/apikey/usecases"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

type APIKeyHandler struct {
	generateUseCase *usecases.GenerateAPIKeyUseCase
	listUseCase     *usecases.ListAPIKeysUseCase
	revokeUseCase   *usecases.RevokeAPIKeyUseCase
	usageUseCase    *usecases.GetAPIUsageUseCase
	logger          logger.Interface
}

func NewAPIKeyHandler(
	generateUC *usecases.GenerateAPIKeyUseCase,
	listUC *usecases.ListAPIKeysUseCase,
	revokeUC *usecases.RevokeAPIKeyUseCase,
	usageUC *usecases.GetAPIUsageUseCase,
	logger logger.Interface,
) *APIKeyHandler {
	return &APIKeyHandler{
		generateUseCase: generateUC,
		listUseCase:     listUC,
		revokeUseCase:   revokeUC,
		usageUseCase:    usageUC,
		logger:          logger,
	}
}

// Generate mints a new key. The plaintext appears in this response only;
// the store keeps just the hash.
func (h *APIKeyHandler) Generate(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	generated, err := h.generateUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.CreatedResponse(c, generated, "api key generated, store it now, it will not be shown again")
}

func (h *APIKeyHandler) List(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	keys, err := h.listUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, keys)
}

// Usage reports public API calls consumed in the current month, so an
// owner can see how close the tenant is to its plan's maxApiCalls.
func (h *APIKeyHandler) Usage(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}

	usage, err := h.usageUseCase.Execute(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, usage)
}

func (h *APIKeyHandler) Revoke(c *gin.Context) {
	tenantID, ok := tenantIDOrFail(c)
	if !ok {
		return
	}
	keyID, err := utils.ParseUintParam(c, "id", "api key")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.revokeUseCase.Execute(c.Request.Context(), tenantID, keyID); err != nil {
		handleDomainError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
