package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/logger"
)

type mockUserRepo struct {
	user.UserRepository
	CreateFunc        func(ctx context.Context, u *user.User) error
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error)  { return "hashed:" + password, nil }
func (mockHasher) Verify(password, hash string) error    { return nil }

type mockLimitChecker struct {
	err error
}

func (m *mockLimitChecker) Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error {
	return m.err
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

func TestCreateStaff_AssignsBothStaffRoles(t *testing.T) {
	var created *user.User
	repo := &mockUserRepo{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			created = u
			return u.SetID(4)
		},
	}

	uc := NewCreateStaffUseCase(repo, mockHasher{}, &mockLimitChecker{}, nopLogger{})
	result, err := uc.Execute(context.Background(), CreateStaffCommand{
		TenantID: 2,
		Email:    "staff@kost.test",
		Password: "secret123",
		FullName: "Siti Aminah",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.True(t, created.HasRole(authorization.RoleStaff))
	assert.True(t, created.HasRole(authorization.RoleTenantStaff))
	require.NotNil(t, created.TenantID())
	assert.Equal(t, uint(2), *created.TenantID())
	assert.ElementsMatch(t, []string{"STAFF", "TENANT_STAFF"}, result.Roles)
}

func TestCreateStaff_LimitReached(t *testing.T) {
	limitErr := &subscription.LimitReachedError{Resource: vo.LimitStaff, Limit: 1}
	repo := &mockUserRepo{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			t.Fatal("must not create staff past the limit")
			return nil
		},
	}

	uc := NewCreateStaffUseCase(repo, mockHasher{}, &mockLimitChecker{err: limitErr}, nopLogger{})
	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		TenantID: 2,
		Email:    "staff@kost.test",
		Password: "secret123",
		FullName: "Siti Aminah",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, subscription.ErrLimitReached))
	assert.Equal(t, "Plan limit reached for maxStaff (1)", err.Error())
}

func TestCreateStaff_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewCreateStaffUseCase(repo, mockHasher{}, &mockLimitChecker{}, nopLogger{})
	_, err := uc.Execute(context.Background(), CreateStaffCommand{
		TenantID: 2,
		Email:    "staff@kost.test",
		Password: "secret123",
		FullName: "Siti Aminah",
	})
	require.Error(t, err)
}
