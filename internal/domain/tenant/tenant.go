package tenant

import (
	"fmt"
	"time"
)

// Tenant represents a boarding-house business account. Every piece of
// business data in the system hangs off exactly one tenant.
type Tenant struct {
	id        uint
	name      string
	slug      string
	phone     string
	address   string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewTenant(name, slug, phone, address string) (*Tenant, error) {
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("tenant slug is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("tenant name too long (max 150 characters)")
	}
	if len(slug) > 150 {
		return nil, fmt.Errorf("tenant slug too long (max 150 characters)")
	}

	now := time.Now()
	return &Tenant{
		name:      name,
		slug:      slug,
		phone:     phone,
		address:   address,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTenant(id uint, name, slug, phone, address string, isActive bool,
	createdAt, updatedAt time.Time) (*Tenant, error) {

	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}

	return &Tenant{
		id:        id,
		name:      name,
		slug:      slug,
		phone:     phone,
		address:   address,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tenant) ID() uint {
	return t.id
}

func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tenant ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) Slug() string {
	return t.slug
}

func (t *Tenant) Phone() string {
	return t.phone
}

func (t *Tenant) Address() string {
	return t.address
}

func (t *Tenant) IsActive() bool {
	return t.isActive
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tenant) UpdateProfile(name, phone, address string) error {
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	if len(name) > 150 {
		return fmt.Errorf("tenant name too long (max 150 characters)")
	}
	t.name = name
	t.phone = phone
	t.address = address
	t.updatedAt = time.Now()
	return nil
}

// Suspend blocks every tenant-scoped request for this account until it is
// reactivated. Superadmin operations are unaffected.
func (t *Tenant) Suspend() {
	t.isActive = false
	t.updatedAt = time.Now()
}

func (t *Tenant) Reactivate() {
	t.isActive = true
	t.updatedAt = time.Now()
}
