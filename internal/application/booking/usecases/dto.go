package usecases

import (
	"context"
	"time"

	"kostera/internal/domain/booking"
)

// TxRunner mirrors db.TransactionManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type BookingDTO struct {
	ID            uint      `json:"id"`
	RoomID        uint      `json:"room_id"`
	CustomerID    uint      `json:"customer_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	DurationMonth int       `json:"duration_month"`
	Status        string    `json:"status"`
}

type InvoiceDTO struct {
	ID            uint      `json:"id"`
	BookingID     uint      `json:"booking_id"`
	InvoiceNumber string    `json:"invoice_number"`
	Amount        uint64    `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"`
}

type CreateBookingResult struct {
	Booking BookingDTO `json:"booking"`
	Invoice InvoiceDTO `json:"invoice"`
}

func toBookingDTO(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID(),
		RoomID:        b.RoomID(),
		CustomerID:    b.CustomerID(),
		StartDate:     b.StartDate(),
		EndDate:       b.EndDate(),
		DurationMonth: b.DurationMonth(),
		Status:        b.Status().String(),
	}
}

func toInvoiceDTO(i *booking.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            i.ID(),
		BookingID:     i.BookingID(),
		InvoiceNumber: i.InvoiceNumber(),
		Amount:        i.Amount(),
		DueDate:       i.DueDate(),
		Status:        i.Status().String(),
	}
}
