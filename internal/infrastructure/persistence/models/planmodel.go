package models

import (
	"time"

	"kostera/internal/shared/constants"
)

// PlanModel is reference data managed only by superadmin. There is no kost
// limit column; it is derived from AllowMultiBranch.
type PlanModel struct {
	ID               uint   `gorm:"primarykey"`
	Name             string `gorm:"uniqueIndex;not null;size:100"`
	Price            uint64 `gorm:"not null;default:0"`
	MaxRooms         int    `gorm:"not null;default:0"`
	MaxStaff         int    `gorm:"not null;default:0"`
	MaxAPICalls      int    `gorm:"not null;default:0;column:max_api_calls"`
	AllowMultiBranch bool   `gorm:"not null;default:false"`
	AllowFinance     bool   `gorm:"not null;default:false"`
	AllowExport      bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
