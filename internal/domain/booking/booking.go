package booking

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusActive, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking ties a customer to a room for a period. Creating one occupies the
// room and generates an invoice in the same transaction.
type Booking struct {
	id            uint
	tenantID      uint
	roomID        uint
	customerID    uint
	startDate     time.Time
	endDate       time.Time
	durationMonth int
	status        BookingStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func NewBooking(tenantID, roomID, customerID uint, startDate, endDate time.Time, durationMonth int) (*Booking, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if roomID == 0 {
		return nil, fmt.Errorf("room ID is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}
	if durationMonth <= 0 {
		durationMonth = 1
	}

	now := time.Now()
	return &Booking{
		tenantID:      tenantID,
		roomID:        roomID,
		customerID:    customerID,
		startDate:     startDate,
		endDate:       endDate,
		durationMonth: durationMonth,
		status:        BookingStatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(id, tenantID, roomID, customerID uint, startDate, endDate time.Time,
	durationMonth int, status BookingStatus, createdAt, updatedAt time.Time) (*Booking, error) {

	if id == 0 {
		return nil, fmt.Errorf("booking ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid booking status: %s", status)
	}

	return &Booking{
		id:            id,
		tenantID:      tenantID,
		roomID:        roomID,
		customerID:    customerID,
		startDate:     startDate,
		endDate:       endDate,
		durationMonth: durationMonth,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (b *Booking) ID() uint {
	return b.id
}

func (b *Booking) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("booking ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("booking ID cannot be zero")
	}
	b.id = id
	return nil
}

func (b *Booking) TenantID() uint {
	return b.tenantID
}

func (b *Booking) RoomID() uint {
	return b.roomID
}

func (b *Booking) CustomerID() uint {
	return b.customerID
}

func (b *Booking) StartDate() time.Time {
	return b.startDate
}

func (b *Booking) EndDate() time.Time {
	return b.endDate
}

func (b *Booking) DurationMonth() int {
	return b.durationMonth
}

func (b *Booking) Status() BookingStatus {
	return b.status
}

func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

func (b *Booking) IsActive() bool {
	return b.status == BookingStatusActive
}

func (b *Booking) BelongsTo(tenantID uint) bool {
	return b.tenantID == tenantID
}

func (b *Booking) Complete() error {
	if b.status != BookingStatusActive {
		return fmt.Errorf("only active bookings can be completed")
	}
	b.status = BookingStatusCompleted
	b.updatedAt = time.Now()
	return nil
}

func (b *Booking) Cancel() error {
	if b.status != BookingStatusActive {
		return fmt.Errorf("only active bookings can be cancelled")
	}
	b.status = BookingStatusCancelled
	b.updatedAt = time.Now()
	return nil
}
