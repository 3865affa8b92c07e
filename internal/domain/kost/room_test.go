package kost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailableRoom(t *testing.T) *Room {
	t.Helper()
	room, err := NewRoom(1, 2, nil, "101", 1500000)
	require.NoError(t, err)
	require.NotNil(t, room)
	return room
}

func TestNewRoom_DefaultsToAvailable(t *testing.T) {
	room := newAvailableRoom(t)

	assert.Equal(t, RoomStatusAvailable, room.Status())
	assert.True(t, room.IsAvailable())
	assert.Nil(t, room.CurrentBookingID())
}

func TestNewRoom_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		tenantID uint
		kostID   uint
		number   string
		wantErr  string
	}{
		{"zero tenant", 0, 1, "101", "tenant ID is required"},
		{"zero kost", 1, 0, "101", "kost ID is required"},
		{"empty number", 1, 1, "", "room number is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			room, err := NewRoom(tc.tenantID, tc.kostID, nil, tc.number, 0)
			assert.Error(t, err)
			assert.Nil(t, room)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRoom_OccupyAndRelease(t *testing.T) {
	room := newAvailableRoom(t)

	err := room.Occupy(42)
	require.NoError(t, err)
	assert.Equal(t, RoomStatusOccupied, room.Status())
	require.NotNil(t, room.CurrentBookingID())
	assert.Equal(t, uint(42), *room.CurrentBookingID())

	room.Release()
	assert.Equal(t, RoomStatusAvailable, room.Status())
	assert.Nil(t, room.CurrentBookingID())
}

func TestRoom_Occupy_AlreadyOccupied(t *testing.T) {
	room := newAvailableRoom(t)
	require.NoError(t, room.Occupy(42))

	err := room.Occupy(43)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestRoom_SetMaintenance(t *testing.T) {
	room := newAvailableRoom(t)

	err := room.SetMaintenance()
	require.NoError(t, err)
	assert.Equal(t, RoomStatusMaintenance, room.Status())
	assert.False(t, room.IsAvailable())
}

func TestRoom_SetMaintenance_Occupied(t *testing.T) {
	room := newAvailableRoom(t)
	require.NoError(t, room.Occupy(42))

	err := room.SetMaintenance()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "occupied")
}

func TestRoom_BelongsTo(t *testing.T) {
	room := newAvailableRoom(t)

	assert.True(t, room.BelongsTo(1))
	assert.False(t, room.BelongsTo(2))
}

func TestRoomStatus_IsValid(t *testing.T) {
	assert.True(t, RoomStatusAvailable.IsValid())
	assert.True(t, RoomStatusOccupied.IsValid())
	assert.True(t, RoomStatusMaintenance.IsValid())
	assert.False(t, RoomStatus("DEMOLISHED").IsValid())
}
