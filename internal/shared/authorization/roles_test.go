package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		required []Role
		expected []Role
	}{
		{
			name:     "tenant group expands to owner and staff",
			required: []Role{RoleTenant},
			expected: []Role{RoleTenant, RoleOwner, RoleStaff},
		},
		{
			name:     "tenant staff expands to staff",
			required: []Role{RoleTenantStaff},
			expected: []Role{RoleTenantStaff, RoleStaff},
		},
		{
			name:     "superadmin expands to itself only",
			required: []Role{RoleSuperadmin},
			expected: []Role{RoleSuperadmin},
		},
		{
			name:     "owner has no aliases",
			required: []Role{RoleOwner},
			expected: []Role{RoleOwner},
		},
		{
			name:     "multiple requirements merge",
			required: []Role{RoleTenant, RoleSuperadmin},
			expected: []Role{RoleTenant, RoleOwner, RoleStaff, RoleSuperadmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effective := Expand(tt.required)
			assert.Len(t, effective, len(tt.expected))
			for _, role := range tt.expected {
				assert.Contains(t, effective, role)
			}
		})
	}
}

func TestExpandNeverImpliesSuperadmin(t *testing.T) {
	for _, required := range [][]Role{
		{RoleTenant},
		{RoleTenantStaff},
		{RoleOwner, RoleStaff, RoleCustomer},
		{RoleTenant, RoleTenantStaff},
	} {
		effective := Expand(required)
		assert.NotContains(t, effective, RoleSuperadmin, "required=%v", required)
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name        string
		required    []Role
		callerRoles []string
		want        bool
	}{
		{
			name:        "owner passes tenant gate",
			required:    []Role{RoleTenant},
			callerRoles: []string{"OWNER"},
			want:        true,
		},
		{
			name:        "staff passes tenant gate",
			required:    []Role{RoleTenant},
			callerRoles: []string{"STAFF"},
			want:        true,
		},
		{
			name:        "staff passes tenant staff gate",
			required:    []Role{RoleTenantStaff},
			callerRoles: []string{"STAFF"},
			want:        true,
		},
		{
			name:        "customer fails tenant gate",
			required:    []Role{RoleTenant},
			callerRoles: []string{"CUSTOMER"},
			want:        false,
		},
		{
			name:        "customer fails tenant staff gate",
			required:    []Role{RoleTenantStaff},
			callerRoles: []string{"CUSTOMER"},
			want:        false,
		},
		{
			name:        "superadmin fails tenant gate unless listed",
			required:    []Role{RoleTenant},
			callerRoles: []string{"SUPERADMIN"},
			want:        false,
		},
		{
			name:        "superadmin passes when listed explicitly",
			required:    []Role{RoleTenant, RoleSuperadmin},
			callerRoles: []string{"SUPERADMIN"},
			want:        true,
		},
		{
			name:        "expansion is not reversed: owner fails tenant staff gate",
			required:    []Role{RoleTenantStaff},
			callerRoles: []string{"OWNER"},
			want:        false,
		},
		{
			name:        "empty requirement always passes",
			required:    nil,
			callerRoles: []string{"CUSTOMER"},
			want:        true,
		},
		{
			name:        "empty caller role set fails",
			required:    []Role{RoleTenant},
			callerRoles: nil,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Satisfies(tt.required, tt.callerRoles))
		})
	}
}

func TestHasRole(t *testing.T) {
	roles := []string{"OWNER", "STAFF"}
	assert.True(t, HasRole(roles, RoleOwner))
	assert.False(t, HasRole(roles, RoleSuperadmin))
	assert.False(t, HasRole(nil, RoleOwner))
}
