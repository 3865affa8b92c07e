package kost

import "errors"

var (
	ErrKostNotFound     = errors.New("Kost not found")
	ErrKostAccessDenied = errors.New("Access to this Kost denied")
	ErrRoomNotFound     = errors.New("Room not found")
	ErrRoomTypeNotFound = errors.New("Room Type not found or access denied")
	ErrRoomNotAvailable = errors.New("room is not available")
)
