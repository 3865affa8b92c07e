package models

import (
	"time"

	"kostera/internal/shared/constants"
)

type BookingModel struct {
	ID            uint      `gorm:"primarykey"`
	TenantID      uint      `gorm:"not null;index"`
	RoomID        uint      `gorm:"not null;index"`
	CustomerID    uint      `gorm:"not null;index"`
	StartDate     time.Time `gorm:"not null;index"`
	EndDate       time.Time `gorm:"not null"`
	DurationMonth int       `gorm:"not null;default:1"`
	Status        string    `gorm:"not null;size:20"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (BookingModel) TableName() string {
	return constants.TableBookings
}

type InvoiceModel struct {
	ID            uint      `gorm:"primarykey"`
	TenantID      uint      `gorm:"not null;index:idx_invoice_tenant,priority:1"`
	BookingID     uint      `gorm:"not null;index"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null;size:50"`
	Amount        uint64    `gorm:"not null;default:0"`
	DueDate       time.Time `gorm:"not null"`
	Status        string    `gorm:"not null;size:20;index:idx_invoice_tenant,priority:2"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (InvoiceModel) TableName() string {
	return constants.TableInvoices
}

type PaymentModel struct {
	ID            uint   `gorm:"primarykey"`
	TenantID      uint   `gorm:"not null;index"`
	InvoiceID     uint   `gorm:"not null;index"`
	Amount        uint64 `gorm:"not null"`
	PaymentMethod string `gorm:"not null;size:50"`
	CreatedAt     time.Time
}

func (PaymentModel) TableName() string {
	return constants.TablePayments
}
