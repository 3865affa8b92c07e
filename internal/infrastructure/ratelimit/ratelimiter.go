package ratelimit

import "context"

// APICallLimiter enforces a tenant's monthly public API call quota. The quota
// comes from the tenant's plan (maxApiCalls).
type APICallLimiter interface {
	// Allow consumes one call and reports whether the tenant is still
	// inside its quota. A limit of zero or less always denies.
	Allow(ctx context.Context, tenantID uint, limit int) (bool, error)
	// Used returns calls consumed in the current window.
	Used(ctx context.Context, tenantID uint) (int64, error)
}
