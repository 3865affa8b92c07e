package kost

import "context"

type KostRepository interface {
	Create(ctx context.Context, kost *Kost) error
	GetByID(ctx context.Context, id uint) (*Kost, error)
	Update(ctx context.Context, kost *Kost) error
	Delete(ctx context.Context, id uint) error
	ListByTenant(ctx context.Context, tenantID uint) ([]*Kost, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *RoomType) error
	GetByID(ctx context.Context, id uint) (*RoomType, error)
	Update(ctx context.Context, roomType *RoomType) error
	Delete(ctx context.Context, id uint) error
	ListByTenant(ctx context.Context, tenantID uint) ([]*RoomType, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, id uint) (*Room, error)
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id uint) error
	// ListByTenant optionally narrows to one kost when kostID is non-nil.
	ListByTenant(ctx context.Context, tenantID uint, kostID *uint) ([]*Room, error)
	ListAvailableByTenant(ctx context.Context, tenantID uint) ([]*Room, error)
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}
