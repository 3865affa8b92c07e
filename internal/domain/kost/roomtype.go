package kost

import (
	"fmt"
	"time"
)

// RoomType groups rooms with the same price point and facilities.
// Facilities are stored as a JSON array of strings.
type RoomType struct {
	id         uint
	tenantID   uint
	name       string
	basePrice  uint64
	facilities []string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRoomType(tenantID uint, name string, basePrice uint64, facilities []string) (*RoomType, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("room type name is required")
	}

	now := time.Now()
	return &RoomType{
		tenantID:   tenantID,
		name:       name,
		basePrice:  basePrice,
		facilities: facilities,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoomType(id, tenantID uint, name string, basePrice uint64,
	facilities []string, createdAt, updatedAt time.Time) (*RoomType, error) {

	if id == 0 {
		return nil, fmt.Errorf("room type ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}

	return &RoomType{
		id:         id,
		tenantID:   tenantID,
		name:       name,
		basePrice:  basePrice,
		facilities: facilities,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (rt *RoomType) ID() uint {
	return rt.id
}

func (rt *RoomType) SetID(id uint) error {
	if rt.id != 0 {
		return fmt.Errorf("room type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("room type ID cannot be zero")
	}
	rt.id = id
	return nil
}

func (rt *RoomType) TenantID() uint {
	return rt.tenantID
}

func (rt *RoomType) Name() string {
	return rt.name
}

func (rt *RoomType) BasePrice() uint64 {
	return rt.basePrice
}

func (rt *RoomType) Facilities() []string {
	return rt.facilities
}

func (rt *RoomType) CreatedAt() time.Time {
	return rt.createdAt
}

func (rt *RoomType) UpdatedAt() time.Time {
	return rt.updatedAt
}

func (rt *RoomType) Update(name string, basePrice uint64, facilities []string) error {
	if name == "" {
		return fmt.Errorf("room type name is required")
	}
	rt.name = name
	rt.basePrice = basePrice
	rt.facilities = facilities
	rt.updatedAt = time.Now()
	return nil
}

func (rt *RoomType) BelongsTo(tenantID uint) bool {
	return rt.tenantID == tenantID
}
