package booking

import "context"

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	Update(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id uint) error
	// ListByTenant returns the tenant's bookings newest start date first.
	ListByTenant(ctx context.Context, tenantID uint) ([]*Booking, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *Invoice) error
	GetByID(ctx context.Context, id uint) (*Invoice, error)
	GetByBookingID(ctx context.Context, bookingID uint) (*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	ListByTenant(ctx context.Context, tenantID uint) ([]*Invoice, error)
	// SumPaidByTenant totals settled invoices, the tenant's revenue.
	SumPaidByTenant(ctx context.Context, tenantID uint) (uint64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	ListByInvoice(ctx context.Context, invoiceID uint) ([]*Payment, error)
}
