package models

import (
	"time"

	"kostera/internal/shared/constants"
)

type ExpenseModel struct {
	ID          uint      `gorm:"primarykey"`
	TenantID    uint      `gorm:"not null;index"`
	Title       string    `gorm:"not null;size:200"`
	Amount      uint64    `gorm:"not null;default:0"`
	Category    string    `gorm:"size:50"`
	ExpenseDate time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ExpenseModel) TableName() string {
	return constants.TableExpenses
}
