package auth

import (
	"testing"

	"kostera/internal/shared/authorization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)
	tenantID := uint(3)

	token, err := svc.Generate(42, &tenantID, []authorization.Role{authorization.RoleOwner})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.TenantID)
	assert.Equal(t, uint(3), *claims.TenantID)
	assert.Equal(t, []authorization.Role{authorization.RoleOwner}, claims.Roles)
}

func TestJWTService_SuperadminHasNoTenant(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, err := svc.Generate(1, nil, []authorization.Role{authorization.RoleSuperadmin})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Nil(t, claims.TenantID)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 60)
	other := NewJWTService("different-secret", 60)

	token, err := svc.Generate(1, nil, nil)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Verify("secret123", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}
