package user

import (
	"testing"

	"kostera/internal/shared/authorization"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestNewUser_OwnerWithTenant(t *testing.T) {
	u, err := NewUser("owner@kost.test", "$2a$10$hash", "Budi", uintPtr(3),
		[]authorization.Role{authorization.RoleOwner})

	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "owner@kost.test", u.Email())
	require.NotNil(t, u.TenantID())
	assert.Equal(t, uint(3), *u.TenantID())
	assert.True(t, u.HasRole(authorization.RoleOwner))
	assert.False(t, u.IsSuperadmin())
	assert.True(t, u.IsActive())
}

func TestNewUser_SuperadminWithoutTenant(t *testing.T) {
	u, err := NewUser("root@kostera.test", "$2a$10$hash", "Root", nil,
		[]authorization.Role{authorization.RoleSuperadmin})

	require.NoError(t, err)
	assert.Nil(t, u.TenantID())
	assert.True(t, u.IsSuperadmin())
}

func TestNewUser_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		hash    string
		uName   string
		roles   []authorization.Role
		wantErr string
	}{
		{"empty email", "", "h", "Budi", nil, "email is required"},
		{"malformed email", "not-an-email", "h", "Budi", nil, "invalid email address"},
		{"empty hash", "a@b.test", "", "Budi", nil, "password hash is required"},
		{"empty name", "a@b.test", "h", "", nil, "user name is required"},
		{"bad role", "a@b.test", "h", "Budi", []authorization.Role{"WIZARD"}, "invalid role"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewUser(tc.email, tc.hash, tc.uName, nil, tc.roles)
			assert.Error(t, err)
			assert.Nil(t, u)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestUser_HasRole_ExactMembership(t *testing.T) {
	u, err := NewUser("staff@kost.test", "h", "Sari", uintPtr(1),
		[]authorization.Role{authorization.RoleStaff, authorization.RoleTenantStaff})
	require.NoError(t, err)

	assert.True(t, u.HasRole(authorization.RoleStaff))
	assert.True(t, u.HasRole(authorization.RoleTenantStaff))
	// Membership is literal; holding STAFF does not make the user an
	// OWNER or a superadmin.
	assert.False(t, u.HasRole(authorization.RoleOwner))
	assert.False(t, u.HasRole(authorization.RoleSuperadmin))
	assert.False(t, u.IsSuperadmin())
}

func TestUser_AssignRoles(t *testing.T) {
	u, err := NewUser("staff@kost.test", "h", "Sari", uintPtr(1),
		[]authorization.Role{authorization.RoleStaff})
	require.NoError(t, err)

	err = u.AssignRoles([]authorization.Role{authorization.RoleStaff, authorization.RoleTenantStaff})
	require.NoError(t, err)
	assert.True(t, u.HasRole(authorization.RoleTenantStaff))

	err = u.AssignRoles([]authorization.Role{"WIZARD"})
	assert.Error(t, err)
}
