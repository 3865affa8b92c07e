package models

import (
	"time"

	"gorm.io/gorm"

	"kostera/internal/shared/constants"
)

type CustomerModel struct {
	ID        uint   `gorm:"primarykey"`
	TenantID  uint   `gorm:"not null;index"`
	FullName  string `gorm:"not null;size:150"`
	Phone     string `gorm:"size:30"`
	Email     string `gorm:"size:255"`
	KTPNumber string `gorm:"size:30;column:ktp_number"`
	Address   string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
