package tenant

import "errors"

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrSlugExists      = errors.New("tenant slug already exists")
	ErrTenantSuspended = errors.New("Tenant account is suspended")
	ErrTenantRequired  = errors.New("Tenant context required")
)
