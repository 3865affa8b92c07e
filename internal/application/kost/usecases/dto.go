package usecases

import (
	"context"

	"kostera/internal/domain/kost"
	vo "kostera/internal/domain/subscription/valueobjects"
)

// LimitChecker guards creation against the plan ceiling. Satisfied by the
// subscription CheckLimitUseCase.
type LimitChecker interface {
	Execute(ctx context.Context, tenantID uint, resource vo.LimitResource) error
}

type KostDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type RoomTypeDTO struct {
	ID         uint     `json:"id"`
	Name       string   `json:"name"`
	BasePrice  uint64   `json:"base_price"`
	Facilities []string `json:"facilities"`
}

type RoomDTO struct {
	ID               uint   `json:"id"`
	KostID           uint   `json:"kost_id"`
	RoomTypeID       *uint  `json:"room_type_id,omitempty"`
	RoomNumber       string `json:"room_number"`
	Price            uint64 `json:"price"`
	Status           string `json:"status"`
	CurrentBookingID *uint  `json:"current_booking_id,omitempty"`
}

func toKostDTO(k *kost.Kost) KostDTO {
	return KostDTO{
		ID:          k.ID(),
		Name:        k.Name(),
		Address:     k.Address(),
		Description: k.Description(),
	}
}

func toRoomTypeDTO(rt *kost.RoomType) RoomTypeDTO {
	return RoomTypeDTO{
		ID:         rt.ID(),
		Name:       rt.Name(),
		BasePrice:  rt.BasePrice(),
		Facilities: rt.Facilities(),
	}
}

func toRoomDTO(r *kost.Room) RoomDTO {
	return RoomDTO{
		ID:               r.ID(),
		KostID:           r.KostID(),
		RoomTypeID:       r.RoomTypeID(),
		RoomNumber:       r.RoomNumber(),
		Price:            r.Price(),
		Status:           r.Status().String(),
		CurrentBookingID: r.CurrentBookingID(),
	}
}
