package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kostera/internal/domain/apikey"
	"kostera/internal/domain/booking"
	"kostera/internal/domain/customer"
	"kostera/internal/domain/kost"
	"kostera/internal/domain/subscription"
	"kostera/internal/domain/tenant"
	"kostera/internal/domain/user"
	"kostera/internal/interfaces/http/middleware"
	"kostera/internal/shared/utils"
)

// handleDomainError maps domain sentinels onto HTTP statuses. Ownership
// misses surface as not-found so callers cannot probe another tenant's
// resources; plan and tenant denials are forbidden with their reason text.
func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, kost.ErrKostNotFound),
		errors.Is(err, kost.ErrRoomNotFound),
		errors.Is(err, kost.ErrRoomTypeNotFound),
		errors.Is(err, booking.ErrBookingNotFound),
		errors.Is(err, booking.ErrInvoiceNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, apikey.ErrAPIKeyNotFound),
		errors.Is(err, tenant.ErrTenantNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, subscription.ErrPlanNotFound),
		errors.Is(err, subscription.ErrSubscriptionNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())

	case errors.Is(err, kost.ErrKostAccessDenied),
		errors.Is(err, subscription.ErrLimitReached),
		errors.Is(err, subscription.ErrFeatureNotSupported),
		errors.Is(err, subscription.ErrNoActiveSubscription),
		errors.Is(err, tenant.ErrTenantRequired),
		errors.Is(err, tenant.ErrTenantSuspended):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, tenant.ErrSlugExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, subscription.ErrPlanNameExists),
		errors.Is(err, kost.ErrRoomNotAvailable),
		errors.Is(err, booking.ErrInvoicePaid):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())

	default:
		utils.ErrorResponseWithError(c, err)
	}
}

// tenantIDOrFail pulls the tenant scope the auth middleware stored. Routes
// behind the tenant guard always have it; a miss means a wiring mistake.
func tenantIDOrFail(c *gin.Context) (uint, bool) {
	tenantID, ok := middleware.TenantIDFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, tenant.ErrTenantRequired.Error())
		return 0, false
	}
	return tenantID, true
}
