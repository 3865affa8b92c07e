package usecases

import (
	"context"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/logger"
)

type mockSubscriptionRepository struct {
	CreateFunc                   func(ctx context.Context, sub *subscription.Subscription) error
	GetByIDFunc                  func(ctx context.Context, id uint) (*subscription.Subscription, error)
	GetByTenantIDFunc            func(ctx context.Context, tenantID uint) ([]*subscription.Subscription, error)
	GetActiveByTenantIDFunc      func(ctx context.Context, tenantID uint) (*subscription.Subscription, error)
	UpdateFunc                   func(ctx context.Context, sub *subscription.Subscription) error
	DeactivateActiveByTenantFunc func(ctx context.Context, tenantID uint) error
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, subscription.ErrSubscriptionNotFound
}

func (m *mockSubscriptionRepository) GetByTenantID(ctx context.Context, tenantID uint) ([]*subscription.Subscription, error) {
	if m.GetByTenantIDFunc != nil {
		return m.GetByTenantIDFunc(ctx, tenantID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) GetActiveByTenantID(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	if m.GetActiveByTenantIDFunc != nil {
		return m.GetActiveByTenantIDFunc(ctx, tenantID)
	}
	return nil, subscription.ErrNoActiveSubscription
}

func (m *mockSubscriptionRepository) Update(ctx context.Context, sub *subscription.Subscription) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) DeactivateActiveByTenant(ctx context.Context, tenantID uint) error {
	if m.DeactivateActiveByTenantFunc != nil {
		return m.DeactivateActiveByTenantFunc(ctx, tenantID)
	}
	return nil
}

type mockPlanRepository struct {
	CreateFunc       func(ctx context.Context, plan *subscription.Plan) error
	GetByIDFunc      func(ctx context.Context, id uint) (*subscription.Plan, error)
	GetByNameFunc    func(ctx context.Context, name string) (*subscription.Plan, error)
	UpdateFunc       func(ctx context.Context, plan *subscription.Plan) error
	DeleteFunc       func(ctx context.Context, id uint) error
	ListFunc         func(ctx context.Context) ([]*subscription.Plan, error)
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
}

func (m *mockPlanRepository) Create(ctx context.Context, plan *subscription.Plan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepository) GetByID(ctx context.Context, id uint) (*subscription.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, subscription.ErrPlanNotFound
}

func (m *mockPlanRepository) GetByName(ctx context.Context, name string) (*subscription.Plan, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, subscription.ErrPlanNotFound
}

func (m *mockPlanRepository) Update(ctx context.Context, plan *subscription.Plan) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, plan)
	}
	return nil
}

func (m *mockPlanRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPlanRepository) List(ctx context.Context) ([]*subscription.Plan, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

type mockUsageCounter struct {
	CountForFunc func(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error)
}

func (m *mockUsageCounter) CountFor(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
	if m.CountForFunc != nil {
		return m.CountForFunc(ctx, tenantID, resource)
	}
	return 0, nil
}

// mockTxRunner executes the function directly without a real transaction.
type mockTxRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                    {}
func (nopLogger) Info(msg string, args ...any)                     {}
func (nopLogger) Warn(msg string, args ...any)                     {}
func (nopLogger) Error(msg string, args ...any)                    {}
func (n nopLogger) With(args ...any) logger.Interface              { return n }
func (n nopLogger) Named(name string) logger.Interface             { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})  {}
