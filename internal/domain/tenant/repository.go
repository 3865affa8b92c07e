package tenant

import "context"

type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
	Update(ctx context.Context, tenant *Tenant) error
	List(ctx context.Context, page, pageSize int) ([]*Tenant, int64, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
