package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
)

func testUser(t *testing.T, email string, tenantID *uint, active bool, roles ...authorization.Role) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(1, email, "hashed:secret123", "Budi Santoso", tenantID, roles, active, now, now)
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	tenantID := uint(5)
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, email, &tenantID, true, authorization.RoleOwner), nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, nopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "owner@kost.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "token-for-1", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, []string{"OWNER"}, result.User.Roles)
	require.NotNil(t, result.User.TenantID)
	assert.Equal(t, tenantID, *result.User.TenantID)
}

func TestLogin_AllFailuresLookAlike(t *testing.T) {
	tenantID := uint(5)
	tests := []struct {
		name     string
		userRepo *mockUserRepository
		password string
	}{
		{
			name:     "unknown email",
			userRepo: &mockUserRepository{},
			password: "secret123",
		},
		{
			name: "wrong password",
			userRepo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return testUser(t, email, &tenantID, true, authorization.RoleOwner), nil
				},
			},
			password: "wrong",
		},
		{
			name: "deactivated account",
			userRepo: &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
					return testUser(t, email, &tenantID, false, authorization.RoleOwner), nil
				},
			},
			password: "secret123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.userRepo, &mockHasher{}, &mockTokenIssuer{}, nopLogger{})
			_, err := uc.Execute(context.Background(), LoginCommand{Email: "owner@kost.test", Password: tt.password})
			require.Error(t, err)
			assert.True(t, errors.Is(err, user.ErrInvalidCredentials))
			assert.Equal(t, "Invalid credentials", err.Error())
		})
	}
}

func TestLogin_SuperadminHasNoTenant(t *testing.T) {
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return testUser(t, email, nil, true, authorization.RoleSuperadmin), nil
		},
	}

	uc := NewLoginUseCase(userRepo, &mockHasher{}, &mockTokenIssuer{}, nopLogger{})
	result, err := uc.Execute(context.Background(), LoginCommand{Email: "root@kostera.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Nil(t, result.User.TenantID)
	assert.Equal(t, []string{"SUPERADMIN"}, result.User.Roles)
}
