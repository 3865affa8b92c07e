package user

import (
	"context"

	"kostera/internal/shared/authorization"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*User, int64, error)
	// ListByTenantAndRole filters a tenant's users by one of their roles.
	// Staff counting for plan limits goes through this with RoleStaff.
	ListByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) ([]*User, error)
	CountByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
