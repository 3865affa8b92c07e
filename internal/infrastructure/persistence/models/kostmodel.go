package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kostera/internal/shared/constants"
)

type KostModel struct {
	ID          uint   `gorm:"primarykey"`
	TenantID    uint   `gorm:"not null;index"`
	Name        string `gorm:"not null;size:150"`
	Address     string `gorm:"size:500"`
	Description string `gorm:"size:1000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (KostModel) TableName() string {
	return constants.TableKosts
}

// RoomTypeModel stores facilities as a JSON array of strings.
type RoomTypeModel struct {
	ID         uint   `gorm:"primarykey"`
	TenantID   uint   `gorm:"not null;index"`
	Name       string `gorm:"not null;size:100"`
	BasePrice  uint64 `gorm:"not null;default:0"`
	Facilities datatypes.JSON
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RoomTypeModel) TableName() string {
	return constants.TableRoomTypes
}

type RoomModel struct {
	ID               uint   `gorm:"primarykey"`
	TenantID         uint   `gorm:"not null;index:idx_room_tenant,priority:1"`
	KostID           uint   `gorm:"not null;index"`
	RoomTypeID       *uint  `gorm:"index"`
	RoomNumber       string `gorm:"not null;size:30"`
	Price            uint64 `gorm:"not null;default:0"`
	Status           string `gorm:"not null;size:20;index:idx_room_tenant,priority:2"`
	CurrentBookingID *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (RoomModel) TableName() string {
	return constants.TableRooms
}
