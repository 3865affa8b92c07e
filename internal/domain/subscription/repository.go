package subscription

import (
	"context"

	vo "kostera/internal/domain/subscription/valueobjects"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	GetByTenantID(ctx context.Context, tenantID uint) ([]*Subscription, error)
	// GetActiveByTenantID returns the tenant's ACTIVE subscription, or
	// ErrNoActiveSubscription when none exists. TRIAL rows do not match.
	GetActiveByTenantID(ctx context.Context, tenantID uint) (*Subscription, error)
	Update(ctx context.Context, subscription *Subscription) error
	// DeactivateActiveByTenant flips every ACTIVE row for the tenant to
	// INACTIVE and closes its end date. Used inside the assign-plan
	// transaction before inserting the replacement row.
	DeactivateActiveByTenant(ctx context.Context, tenantID uint) error
}

type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Plan, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// UsageCounter reports live counts of a tenant's countable resources. Counts
// are taken from the current rows at check time, never from cached tallies.
type UsageCounter interface {
	CountFor(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error)
}
