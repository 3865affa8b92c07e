package models

import (
	"time"

	"gorm.io/gorm"

	"kostera/internal/shared/constants"
)

// UserModel holds login accounts. TenantID is null for superadmins.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	FullName     string `gorm:"not null;size:150"`
	TenantID     *uint  `gorm:"index"`
	IsActive     bool   `gorm:"not null;default:true"`
	Roles        []RoleModel `gorm:"many2many:user_roles;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}

// RoleModel is the global role catalog. Level is stored but unused in
// comparisons.
type RoleModel struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"uniqueIndex;not null;size:50"`
	Level int    `gorm:"not null;default:0"`
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
