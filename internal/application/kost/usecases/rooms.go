package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/kost"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type CreateRoomCommand struct {
	TenantID   uint
	KostID     uint
	RoomTypeID *uint
	RoomNumber string
	Price      uint64
}

// CreateRoomUseCase adds a room to a kost the tenant owns. The room limit
// counts across all of the tenant's kosts, not per branch. When the price is
// zero it falls back to the room type's base price.
type CreateRoomUseCase struct {
	roomRepo     kost.RoomRepository
	kostRepo     kost.KostRepository
	roomTypeRepo kost.RoomTypeRepository
	limitChecker LimitChecker
	logger       logger.Interface
}

func NewCreateRoomUseCase(
	roomRepo kost.RoomRepository,
	kostRepo kost.KostRepository,
	roomTypeRepo kost.RoomTypeRepository,
	limitChecker LimitChecker,
	logger logger.Interface,
) *CreateRoomUseCase {
	return &CreateRoomUseCase{
		roomRepo:     roomRepo,
		kostRepo:     kostRepo,
		roomTypeRepo: roomTypeRepo,
		limitChecker: limitChecker,
		logger:       logger,
	}
}

func (uc *CreateRoomUseCase) Execute(ctx context.Context, cmd CreateRoomCommand) (*RoomDTO, error) {
	if err := uc.limitChecker.Execute(ctx, cmd.TenantID, vo.LimitRooms); err != nil {
		return nil, err
	}

	k, err := uc.kostRepo.GetByID(ctx, cmd.KostID)
	if err != nil {
		return nil, err
	}
	if !k.BelongsTo(cmd.TenantID) {
		return nil, kost.ErrKostAccessDenied
	}

	price := cmd.Price
	if cmd.RoomTypeID != nil {
		rt, err := uc.roomTypeRepo.GetByID(ctx, *cmd.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if !rt.BelongsTo(cmd.TenantID) {
			return nil, kost.ErrRoomTypeNotFound
		}
		if price == 0 {
			price = rt.BasePrice()
		}
	}

	room, err := kost.NewRoom(cmd.TenantID, cmd.KostID, cmd.RoomTypeID, cmd.RoomNumber, price)
	if err != nil {
		return nil, errors.NewValidationError("invalid room", err.Error())
	}
	if err := uc.roomRepo.Create(ctx, room); err != nil {
		uc.logger.Errorw("failed to create room", "error", err, "tenant_id", cmd.TenantID, "kost_id", cmd.KostID)
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	uc.logger.Infow("room created", "room_id", room.ID(), "kost_id", cmd.KostID, "tenant_id", cmd.TenantID)
	result := toRoomDTO(room)
	return &result, nil
}

type ListRoomsUseCase struct {
	roomRepo kost.RoomRepository
	logger   logger.Interface
}

func NewListRoomsUseCase(roomRepo kost.RoomRepository, logger logger.Interface) *ListRoomsUseCase {
	return &ListRoomsUseCase{roomRepo: roomRepo, logger: logger}
}

func (uc *ListRoomsUseCase) Execute(ctx context.Context, tenantID uint, kostID *uint) ([]RoomDTO, error) {
	rooms, err := uc.roomRepo.ListByTenant(ctx, tenantID, kostID)
	if err != nil {
		uc.logger.Errorw("failed to list rooms", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	result := make([]RoomDTO, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, toRoomDTO(room))
	}
	return result, nil
}

type UpdateRoomCommand struct {
	TenantID   uint
	RoomID     uint
	RoomNumber string
	Price      uint64
	RoomTypeID *uint
}

type UpdateRoomUseCase struct {
	roomRepo kost.RoomRepository
	logger   logger.Interface
}

func NewUpdateRoomUseCase(roomRepo kost.RoomRepository, logger logger.Interface) *UpdateRoomUseCase {
	return &UpdateRoomUseCase{roomRepo: roomRepo, logger: logger}
}

func (uc *UpdateRoomUseCase) Execute(ctx context.Context, cmd UpdateRoomCommand) (*RoomDTO, error) {
	room, err := uc.roomRepo.GetByID(ctx, cmd.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.BelongsTo(cmd.TenantID) {
		return nil, kost.ErrRoomNotFound
	}
	if err := room.Update(cmd.RoomNumber, cmd.Price, cmd.RoomTypeID); err != nil {
		return nil, errors.NewValidationError("invalid room", err.Error())
	}
	if err := uc.roomRepo.Update(ctx, room); err != nil {
		uc.logger.Errorw("failed to update room", "error", err, "room_id", cmd.RoomID)
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	result := toRoomDTO(room)
	return &result, nil
}

// SetRoomMaintenanceUseCase flips an available room into maintenance or back.
type SetRoomMaintenanceUseCase struct {
	roomRepo kost.RoomRepository
	logger   logger.Interface
}

func NewSetRoomMaintenanceUseCase(roomRepo kost.RoomRepository, logger logger.Interface) *SetRoomMaintenanceUseCase {
	return &SetRoomMaintenanceUseCase{roomRepo: roomRepo, logger: logger}
}

func (uc *SetRoomMaintenanceUseCase) Execute(ctx context.Context, tenantID, roomID uint, maintenance bool) (*RoomDTO, error) {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.BelongsTo(tenantID) {
		return nil, kost.ErrRoomNotFound
	}

	if maintenance {
		if err := room.SetMaintenance(); err != nil {
			return nil, errors.NewConflictError("room cannot enter maintenance", err.Error())
		}
	} else {
		room.Release()
	}

	if err := uc.roomRepo.Update(ctx, room); err != nil {
		uc.logger.Errorw("failed to update room status", "error", err, "room_id", roomID)
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}
	result := toRoomDTO(room)
	return &result, nil
}

type DeleteRoomUseCase struct {
	roomRepo kost.RoomRepository
	logger   logger.Interface
}

func NewDeleteRoomUseCase(roomRepo kost.RoomRepository, logger logger.Interface) *DeleteRoomUseCase {
	return &DeleteRoomUseCase{roomRepo: roomRepo, logger: logger}
}

func (uc *DeleteRoomUseCase) Execute(ctx context.Context, tenantID, roomID uint) error {
	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if !room.BelongsTo(tenantID) {
		return kost.ErrRoomNotFound
	}
	if room.CurrentBookingID() != nil {
		return errors.NewConflictError("room has an active booking")
	}
	if err := uc.roomRepo.Delete(ctx, roomID); err != nil {
		uc.logger.Errorw("failed to delete room", "error", err, "room_id", roomID)
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
