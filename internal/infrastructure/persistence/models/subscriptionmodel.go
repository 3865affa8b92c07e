package models

import (
	"time"

	"kostera/internal/shared/constants"
)

// SubscriptionModel links a tenant to a plan. The repository keeps at most
// one ACTIVE row per tenant; history stays as INACTIVE rows.
type SubscriptionModel struct {
	ID        uint      `gorm:"primarykey"`
	TenantID  uint      `gorm:"not null;index:idx_tenant_status,priority:1"`
	PlanID    uint      `gorm:"not null;index"`
	Status    string    `gorm:"not null;size:20;index:idx_tenant_status,priority:2"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
