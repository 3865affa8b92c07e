package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kostera/internal/domain/tenant"
	"kostera/internal/domain/user"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/errors"
)

func TestRegister_CreatesTenantOwnerAndTrial(t *testing.T) {
	var createdTenant *tenant.Tenant
	tenantRepo := &mockTenantRepository{
		CreateFunc: func(ctx context.Context, tn *tenant.Tenant) error {
			createdTenant = tn
			return tn.SetID(9)
		},
	}

	var createdOwner *user.User
	userRepo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			createdOwner = u
			return u.SetID(3)
		},
	}

	trialTenantID := uint(0)
	trial := &mockTrialStarter{
		ExecuteFunc: func(ctx context.Context, tenantID uint) error {
			trialTenantID = tenantID
			return nil
		},
	}

	uc := NewRegisterUseCase(tenantRepo, userRepo, &mockHasher{}, &mockTokenIssuer{}, trial, mockTxRunner{}, nopLogger{})
	result, err := uc.Execute(context.Background(), RegisterCommand{
		KostName: "Kost Bahagia Pusat",
		Email:    "owner@kost.test",
		Password: "secret123",
		FullName: "Budi Santoso",
		Phone:    "+628123456789",
	})
	require.NoError(t, err)

	require.NotNil(t, createdTenant)
	assert.Equal(t, "kost-bahagia-pusat", createdTenant.Slug())
	assert.Equal(t, "Kost Bahagia Pusat", createdTenant.Name())

	require.NotNil(t, createdOwner)
	assert.True(t, createdOwner.HasRole(authorization.RoleOwner))
	require.NotNil(t, createdOwner.TenantID())
	assert.Equal(t, uint(9), *createdOwner.TenantID())
	assert.Equal(t, "hashed:secret123", createdOwner.PasswordHash())

	assert.Equal(t, uint(9), trialTenantID)
	assert.Equal(t, "token-for-3", result.AccessToken)
	assert.Equal(t, []string{"OWNER"}, result.User.Roles)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterUseCase(&mockTenantRepository{}, userRepo, &mockHasher{}, &mockTokenIssuer{}, &mockTrialStarter{}, mockTxRunner{}, nopLogger{})
	_, err := uc.Execute(context.Background(), RegisterCommand{
		KostName: "Kost Bahagia",
		Email:    "owner@kost.test",
		Password: "secret123",
		FullName: "Budi Santoso",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestRegister_DuplicateSlug(t *testing.T) {
	tenantRepo := &mockTenantRepository{
		ExistsBySlugFunc: func(ctx context.Context, slug string) (bool, error) {
			return true, nil
		},
	}

	uc := NewRegisterUseCase(tenantRepo, &mockUserRepository{}, &mockHasher{}, &mockTokenIssuer{}, &mockTrialStarter{}, mockTxRunner{}, nopLogger{})
	_, err := uc.Execute(context.Background(), RegisterCommand{
		KostName: "Kost Bahagia",
		Email:    "owner@kost.test",
		Password: "secret123",
		FullName: "Budi Santoso",
	})
	assert.ErrorIs(t, err, tenant.ErrSlugExists)
}
