package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXAPIKey       = "X-API-KEY"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyUserRoles = "user_roles"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTenants       = "tenants"
	TablePlans         = "plans"
	TableSubscriptions = "subscriptions"
	TableRoles         = "roles"
	TableUsers         = "users"
	TableUserRoles     = "user_roles"
	TableKosts         = "kosts"
	TableRoomTypes     = "room_types"
	TableRooms         = "rooms"
	TableCustomers     = "customers"
	TableBookings      = "bookings"
	TableInvoices      = "invoices"
	TablePayments      = "payments"
	TableExpenses      = "expenses"
	TableAPIKeys       = "api_keys"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
