package user

import (
	"fmt"
	"net/mail"
	"time"

	"kostera/internal/shared/authorization"
)

// User is an account holder. Superadmins carry no tenant; everyone else
// belongs to exactly one tenant.
type User struct {
	id           uint
	email        string
	passwordHash string
	name         string
	tenantID     *uint
	roles        []authorization.Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email, passwordHash, name string, tenantID *uint, roles []authorization.Role) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	for _, r := range roles {
		if !r.IsValid() {
			return nil, fmt.Errorf("invalid role: %s", r)
		}
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		tenantID:     tenantID,
		roles:        roles,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, email, passwordHash, name string, tenantID *uint,
	roles []authorization.Role, isActive bool, createdAt, updatedAt time.Time) (*User, error) {

	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		tenantID:     tenantID,
		roles:        roles,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Name() string {
	return u.name
}

// TenantID returns the owning tenant, or nil for superadmins.
func (u *User) TenantID() *uint {
	return u.tenantID
}

func (u *User) Roles() []authorization.Role {
	return u.roles
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) HasRole(role authorization.Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsSuperadmin() bool {
	return u.HasRole(authorization.RoleSuperadmin)
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateProfile(name string) error {
	if name == "" {
		return fmt.Errorf("user name is required")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *User) AssignRoles(roles []authorization.Role) error {
	for _, r := range roles {
		if !r.IsValid() {
			return fmt.Errorf("invalid role: %s", r)
		}
	}
	u.roles = roles
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now()
}
