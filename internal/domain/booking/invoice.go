package booking

import (
	"fmt"
	"time"
)

type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "UNPAID"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// invoiceDueDays is how long after issue an invoice falls due.
const invoiceDueDays = 3

// Invoice bills a booking for its room price. Generated automatically when
// the booking is created.
type Invoice struct {
	id            uint
	tenantID      uint
	bookingID     uint
	invoiceNumber string
	amount        uint64
	dueDate       time.Time
	status        InvoiceStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewInvoiceFromBooking issues an invoice for a booking at the room's price.
// The number is derived from the issue instant, format INV/<year>/<unix ms>.
func NewInvoiceFromBooking(tenantID, bookingID uint, amount uint64, issuedAt time.Time) (*Invoice, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if bookingID == 0 {
		return nil, fmt.Errorf("booking ID is required")
	}

	number := fmt.Sprintf("INV/%d/%d", issuedAt.Year(), issuedAt.UnixMilli())
	return &Invoice{
		tenantID:      tenantID,
		bookingID:     bookingID,
		invoiceNumber: number,
		amount:        amount,
		dueDate:       issuedAt.AddDate(0, 0, invoiceDueDays),
		status:        InvoiceStatusUnpaid,
		createdAt:     issuedAt,
		updatedAt:     issuedAt,
	}, nil
}

func ReconstructInvoice(id, tenantID, bookingID uint, invoiceNumber string, amount uint64,
	dueDate time.Time, status InvoiceStatus, createdAt, updatedAt time.Time) (*Invoice, error) {

	if id == 0 {
		return nil, fmt.Errorf("invoice ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid invoice status: %s", status)
	}

	return &Invoice{
		id:            id,
		tenantID:      tenantID,
		bookingID:     bookingID,
		invoiceNumber: invoiceNumber,
		amount:        amount,
		dueDate:       dueDate,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (i *Invoice) ID() uint {
	return i.id
}

func (i *Invoice) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("invoice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("invoice ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Invoice) TenantID() uint {
	return i.tenantID
}

func (i *Invoice) BookingID() uint {
	return i.bookingID
}

func (i *Invoice) InvoiceNumber() string {
	return i.invoiceNumber
}

func (i *Invoice) Amount() uint64 {
	return i.amount
}

func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

func (i *Invoice) Status() InvoiceStatus {
	return i.status
}

func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Invoice) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Invoice) IsPaid() bool {
	return i.status == InvoiceStatusPaid
}

func (i *Invoice) BelongsTo(tenantID uint) bool {
	return i.tenantID == tenantID
}

// MarkPaid settles the invoice. Paying an already paid invoice is rejected.
func (i *Invoice) MarkPaid() error {
	if i.status == InvoiceStatusPaid {
		return fmt.Errorf("invoice %s is already paid", i.invoiceNumber)
	}
	i.status = InvoiceStatusPaid
	i.updatedAt = time.Now()
	return nil
}
