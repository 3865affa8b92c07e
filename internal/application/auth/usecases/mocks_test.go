package usecases

import (
	"context"
	"errors"
	"fmt"

	"kostera/internal/domain/tenant"
	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc               func(ctx context.Context, u *user.User) error
	GetByIDFunc              func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc               func(ctx context.Context, u *user.User) error
	DeleteFunc               func(ctx context.Context, id uint) error
	ListByTenantFunc         func(ctx context.Context, tenantID uint, page, pageSize int) ([]*user.User, int64, error)
	ListByTenantAndRoleFunc  func(ctx context.Context, tenantID uint, role authorization.Role) ([]*user.User, error)
	CountByTenantAndRoleFunc func(ctx context.Context, tenantID uint, role authorization.Role) (int64, error)
	ExistsByEmailFunc        func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*user.User, int64, error) {
	if m.ListByTenantFunc != nil {
		return m.ListByTenantFunc(ctx, tenantID, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ListByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) ([]*user.User, error) {
	if m.ListByTenantAndRoleFunc != nil {
		return m.ListByTenantAndRoleFunc(ctx, tenantID, role)
	}
	return nil, nil
}

func (m *mockUserRepository) CountByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) (int64, error) {
	if m.CountByTenantAndRoleFunc != nil {
		return m.CountByTenantAndRoleFunc(ctx, tenantID, role)
	}
	return 0, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockTenantRepository struct {
	CreateFunc       func(ctx context.Context, t *tenant.Tenant) error
	GetByIDFunc      func(ctx context.Context, id uint) (*tenant.Tenant, error)
	GetBySlugFunc    func(ctx context.Context, slug string) (*tenant.Tenant, error)
	UpdateFunc       func(ctx context.Context, t *tenant.Tenant) error
	ListFunc         func(ctx context.Context, page, pageSize int) ([]*tenant.Tenant, int64, error)
	ExistsBySlugFunc func(ctx context.Context, slug string) (bool, error)
}

func (m *mockTenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTenantRepository) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, tenant.ErrTenantNotFound
}

func (m *mockTenantRepository) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, tenant.ErrTenantNotFound
}

func (m *mockTenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTenantRepository) List(ctx context.Context, page, pageSize int) ([]*tenant.Tenant, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockTenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if m.ExistsBySlugFunc != nil {
		return m.ExistsBySlugFunc(ctx, slug)
	}
	return false, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash != "hashed:"+password {
		return errors.New("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, tenantID *uint, roles []authorization.Role) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, tenantID *uint, roles []authorization.Role) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, tenantID, roles)
	}
	return fmt.Sprintf("token-for-%d", userID), nil
}

func (m *mockTokenIssuer) ExpiresIn() int64 {
	return 3600
}

type mockTrialStarter struct {
	ExecuteFunc func(ctx context.Context, tenantID uint) error
}

func (m *mockTrialStarter) Execute(ctx context.Context, tenantID uint) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, tenantID)
	}
	return nil
}

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
