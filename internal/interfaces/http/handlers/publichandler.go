package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/application/public/usecases"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/logger"
	"kostera/internal/shared/utils"
)

// PublicHandler serves the unauthenticated storefront and the API-key
// public API. A suspended tenant's storefront is indistinguishable from a
// nonexistent one.
type PublicHandler struct {
	storefrontUseCase *usecases.GetStorefrontUseCase
	logger            logger.Interface
}

func NewPublicHandler(storefrontUC *usecases.GetStorefrontUseCase, logger logger.Interface) *PublicHandler {
	return &PublicHandler{
		storefrontUseCase: storefrontUC,
		logger:            logger,
	}
}

func (h *PublicHandler) Storefront(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "slug is required")
		return
	}

	storefront, err := h.storefrontUseCase.Execute(c.Request.Context(), slug)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, storefront)
}

// StorefrontRooms lists only the available rooms, for callers that poll
// vacancy without the full storefront payload.
func (h *PublicHandler) StorefrontRooms(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "slug is required")
		return
	}

	storefront, err := h.storefrontUseCase.Execute(c.Request.Context(), slug)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, storefront.Rooms)
}

// APIStorefront serves the same data to API-key callers. The key's tenant
// is fixed by the middleware; the slug path is not used here.
func (h *PublicHandler) APIStorefront(c *gin.Context) {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "api key required")
		return
	}

	storefront, err := h.storefrontUseCase.ExecuteByTenantID(c.Request.Context(), tenantID)
	if err != nil {
		handleDomainError(c, err)
		return
	}
	utils.OKResponse(c, storefront)
}
