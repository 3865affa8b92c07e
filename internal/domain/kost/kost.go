package kost

import (
	"fmt"
	"time"
)

// Kost is a boarding-house branch. Single-branch plans allow exactly one
// kost per tenant; multi-branch plans raise the ceiling.
type Kost struct {
	id          uint
	tenantID    uint
	name        string
	address     string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewKost(tenantID uint, name, address, description string) (*Kost, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("kost name is required")
	}
	if len(name) > 150 {
		return nil, fmt.Errorf("kost name too long (max 150 characters)")
	}

	now := time.Now()
	return &Kost{
		tenantID:    tenantID,
		name:        name,
		address:     address,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructKost(id, tenantID uint, name, address, description string,
	createdAt, updatedAt time.Time) (*Kost, error) {

	if id == 0 {
		return nil, fmt.Errorf("kost ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}

	return &Kost{
		id:          id,
		tenantID:    tenantID,
		name:        name,
		address:     address,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (k *Kost) ID() uint {
	return k.id
}

func (k *Kost) SetID(id uint) error {
	if k.id != 0 {
		return fmt.Errorf("kost ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("kost ID cannot be zero")
	}
	k.id = id
	return nil
}

func (k *Kost) TenantID() uint {
	return k.tenantID
}

func (k *Kost) Name() string {
	return k.name
}

func (k *Kost) Address() string {
	return k.address
}

func (k *Kost) Description() string {
	return k.description
}

func (k *Kost) CreatedAt() time.Time {
	return k.createdAt
}

func (k *Kost) UpdatedAt() time.Time {
	return k.updatedAt
}

func (k *Kost) Update(name, address, description string) error {
	if name == "" {
		return fmt.Errorf("kost name is required")
	}
	if len(name) > 150 {
		return fmt.Errorf("kost name too long (max 150 characters)")
	}
	k.name = name
	k.address = address
	k.description = description
	k.updatedAt = time.Now()
	return nil
}

// BelongsTo reports whether the kost is owned by the given tenant.
func (k *Kost) BelongsTo(tenantID uint) bool {
	return k.tenantID == tenantID
}
