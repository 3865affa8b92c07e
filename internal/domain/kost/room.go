package kost

import (
	"fmt"
	"time"
)

// Room is a rentable unit inside a kost. A room optionally references a room
// type for its price point; the stored price wins over the type's base price.
type Room struct {
	id               uint
	tenantID         uint
	kostID           uint
	roomTypeID       *uint
	roomNumber       string
	price            uint64
	status           RoomStatus
	currentBookingID *uint
	createdAt        time.Time
	updatedAt        time.Time
}

func NewRoom(tenantID, kostID uint, roomTypeID *uint, roomNumber string, price uint64) (*Room, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if kostID == 0 {
		return nil, fmt.Errorf("kost ID is required")
	}
	if roomNumber == "" {
		return nil, fmt.Errorf("room number is required")
	}

	now := time.Now()
	return &Room{
		tenantID:   tenantID,
		kostID:     kostID,
		roomTypeID: roomTypeID,
		roomNumber: roomNumber,
		price:      price,
		status:     RoomStatusAvailable,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRoom(id, tenantID, kostID uint, roomTypeID *uint, roomNumber string,
	price uint64, status RoomStatus, currentBookingID *uint,
	createdAt, updatedAt time.Time) (*Room, error) {

	if id == 0 {
		return nil, fmt.Errorf("room ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid room status: %s", status)
	}

	return &Room{
		id:               id,
		tenantID:         tenantID,
		kostID:           kostID,
		roomTypeID:       roomTypeID,
		roomNumber:       roomNumber,
		price:            price,
		status:           status,
		currentBookingID: currentBookingID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (r *Room) ID() uint {
	return r.id
}

func (r *Room) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("room ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("room ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Room) TenantID() uint {
	return r.tenantID
}

func (r *Room) KostID() uint {
	return r.kostID
}

func (r *Room) RoomTypeID() *uint {
	return r.roomTypeID
}

func (r *Room) RoomNumber() string {
	return r.roomNumber
}

func (r *Room) Price() uint64 {
	return r.price
}

func (r *Room) Status() RoomStatus {
	return r.status
}

func (r *Room) CurrentBookingID() *uint {
	return r.currentBookingID
}

func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Room) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Room) IsAvailable() bool {
	return r.status == RoomStatusAvailable
}

func (r *Room) BelongsTo(tenantID uint) bool {
	return r.tenantID == tenantID
}

func (r *Room) Update(roomNumber string, price uint64, roomTypeID *uint) error {
	if roomNumber == "" {
		return fmt.Errorf("room number is required")
	}
	r.roomNumber = roomNumber
	r.price = price
	r.roomTypeID = roomTypeID
	r.updatedAt = time.Now()
	return nil
}

// Occupy marks the room taken by the given booking.
func (r *Room) Occupy(bookingID uint) error {
	if bookingID == 0 {
		return fmt.Errorf("booking ID is required")
	}
	if r.status != RoomStatusAvailable {
		return fmt.Errorf("room %s is not available", r.roomNumber)
	}
	r.status = RoomStatusOccupied
	r.currentBookingID = &bookingID
	r.updatedAt = time.Now()
	return nil
}

// Release frees the room after its booking ends or is removed.
func (r *Room) Release() {
	r.status = RoomStatusAvailable
	r.currentBookingID = nil
	r.updatedAt = time.Now()
}

// SetMaintenance takes the room off the market. Occupied rooms must be
// released first.
func (r *Room) SetMaintenance() error {
	if r.status == RoomStatusOccupied {
		return fmt.Errorf("room %s is occupied", r.roomNumber)
	}
	r.status = RoomStatusMaintenance
	r.updatedAt = time.Now()
	return nil
}
