package models

import (
	"time"

	"gorm.io/gorm"

	"kostera/internal/shared/constants"
)

// TenantModel represents the database persistence model for tenants
// This is the anti-corruption layer between domain and database
type TenantModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:150"`
	Slug      string `gorm:"uniqueIndex;not null;size:150"`
	Phone     string `gorm:"size:30"`
	Address   string `gorm:"size:500"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TenantModel) TableName() string {
	return constants.TableTenants
}
