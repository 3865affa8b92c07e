package models

import (
	"time"

	"kostera/internal/shared/constants"
)

type APIKeyModel struct {
	ID        uint   `gorm:"primarykey"`
	TenantID  uint   `gorm:"not null;index"`
	KeyHash   string `gorm:"uniqueIndex;not null;size:64"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (APIKeyModel) TableName() string {
	return constants.TableAPIKeys
}
