// Package authorization defines the closed role catalog and the static
// role-expansion rules used by the HTTP guard chain.
package authorization

// Role is a named role from the global role catalog. Roles are not
// tenant-scoped; tenant isolation is enforced separately.
type Role string

const (
	// RoleSuperadmin grants cross-tenant access. It is never implied by
	// expansion and must be listed explicitly on an endpoint.
	RoleSuperadmin Role = "SUPERADMIN"
	// RoleOwner is the tenant owner (the account that registered).
	RoleOwner Role = "OWNER"
	// RoleStaff is a tenant staff member.
	RoleStaff Role = "STAFF"
	// RoleTenantStaff is staff created through the staff module.
	RoleTenantStaff Role = "TENANT_STAFF"
	// RoleCustomer is an end customer (boarder).
	RoleCustomer Role = "CUSTOMER"
	// RoleTenant is a requirement group, not an assignable role: an
	// endpoint requiring TENANT accepts OWNER and STAFF.
	RoleTenant Role = "TENANT"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r names a seeded catalog role. RoleTenant is a
// requirement group and is deliberately excluded.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperadmin, RoleOwner, RoleStaff, RoleTenantStaff, RoleCustomer:
		return true
	}
	return false
}

// expansions is the complete alias table. Expansion is one-directional
// and rule-based: requiring a key role also accepts the listed roles.
// There is no transitivity, and nothing ever expands to SUPERADMIN.
var expansions = map[Role][]Role{
	RoleTenant:      {RoleOwner, RoleStaff},
	RoleTenantStaff: {RoleStaff},
}

// Expand returns the effective requirement set for the declared roles:
// each declared role plus its aliases from the expansion table.
func Expand(required []Role) map[Role]struct{} {
	effective := make(map[Role]struct{}, len(required))
	for _, role := range required {
		effective[role] = struct{}{}
		for _, alias := range expansions[role] {
			effective[alias] = struct{}{}
		}
	}
	return effective
}

// Satisfies reports whether any of the caller's roles is in the expanded
// requirement set. An empty requirement always passes.
func Satisfies(required []Role, callerRoles []string) bool {
	if len(required) == 0 {
		return true
	}
	effective := Expand(required)
	for _, name := range callerRoles {
		if _, ok := effective[Role(name)]; ok {
			return true
		}
	}
	return false
}

// HasRole reports whether the caller's role set contains the given role.
func HasRole(callerRoles []string, role Role) bool {
	for _, name := range callerRoles {
		if Role(name) == role {
			return true
		}
	}
	return false
}
