package usecases

import (
	"context"
	"fmt"

	"kostera/internal/domain/kost"
	"kostera/internal/shared/errors"
	"kostera/internal/shared/logger"
)

type CreateRoomTypeCommand struct {
	TenantID   uint
	Name       string
	BasePrice  uint64
	Facilities []string
}

type CreateRoomTypeUseCase struct {
	roomTypeRepo kost.RoomTypeRepository
	logger       logger.Interface
}

func NewCreateRoomTypeUseCase(roomTypeRepo kost.RoomTypeRepository, logger logger.Interface) *CreateRoomTypeUseCase {
	return &CreateRoomTypeUseCase{roomTypeRepo: roomTypeRepo, logger: logger}
}

func (uc *CreateRoomTypeUseCase) Execute(ctx context.Context, cmd CreateRoomTypeCommand) (*RoomTypeDTO, error) {
	rt, err := kost.NewRoomType(cmd.TenantID, cmd.Name, cmd.BasePrice, cmd.Facilities)
	if err != nil {
		return nil, errors.NewValidationError("invalid room type", err.Error())
	}
	if err := uc.roomTypeRepo.Create(ctx, rt); err != nil {
		uc.logger.Errorw("failed to create room type", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	result := toRoomTypeDTO(rt)
	return &result, nil
}

type ListRoomTypesUseCase struct {
	roomTypeRepo kost.RoomTypeRepository
	logger       logger.Interface
}

func NewListRoomTypesUseCase(roomTypeRepo kost.RoomTypeRepository, logger logger.Interface) *ListRoomTypesUseCase {
	return &ListRoomTypesUseCase{roomTypeRepo: roomTypeRepo, logger: logger}
}

func (uc *ListRoomTypesUseCase) Execute(ctx context.Context, tenantID uint) ([]RoomTypeDTO, error) {
	roomTypes, err := uc.roomTypeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list room types", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	result := make([]RoomTypeDTO, 0, len(roomTypes))
	for _, rt := range roomTypes {
		result = append(result, toRoomTypeDTO(rt))
	}
	return result, nil
}

type UpdateRoomTypeCommand struct {
	TenantID   uint
	RoomTypeID uint
	Name       string
	BasePrice  uint64
	Facilities []string
}

type UpdateRoomTypeUseCase struct {
	roomTypeRepo kost.RoomTypeRepository
	logger       logger.Interface
}

func NewUpdateRoomTypeUseCase(roomTypeRepo kost.RoomTypeRepository, logger logger.Interface) *UpdateRoomTypeUseCase {
	return &UpdateRoomTypeUseCase{roomTypeRepo: roomTypeRepo, logger: logger}
}

func (uc *UpdateRoomTypeUseCase) Execute(ctx context.Context, cmd UpdateRoomTypeCommand) (*RoomTypeDTO, error) {
	rt, err := uc.roomTypeRepo.GetByID(ctx, cmd.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if !rt.BelongsTo(cmd.TenantID) {
		return nil, kost.ErrRoomTypeNotFound
	}
	if err := rt.Update(cmd.Name, cmd.BasePrice, cmd.Facilities); err != nil {
		return nil, errors.NewValidationError("invalid room type", err.Error())
	}
	if err := uc.roomTypeRepo.Update(ctx, rt); err != nil {
		uc.logger.Errorw("failed to update room type", "error", err, "room_type_id", cmd.RoomTypeID)
		return nil, fmt.Errorf("failed to update room type: %w", err)
	}
	result := toRoomTypeDTO(rt)
	return &result, nil
}

type DeleteRoomTypeUseCase struct {
	roomTypeRepo kost.RoomTypeRepository
	logger       logger.Interface
}

func NewDeleteRoomTypeUseCase(roomTypeRepo kost.RoomTypeRepository, logger logger.Interface) *DeleteRoomTypeUseCase {
	return &DeleteRoomTypeUseCase{roomTypeRepo: roomTypeRepo, logger: logger}
}

func (uc *DeleteRoomTypeUseCase) Execute(ctx context.Context, tenantID, roomTypeID uint) error {
	rt, err := uc.roomTypeRepo.GetByID(ctx, roomTypeID)
	if err != nil {
		return err
	}
	if !rt.BelongsTo(tenantID) {
		return kost.ErrRoomTypeNotFound
	}
	if err := uc.roomTypeRepo.Delete(ctx, roomTypeID); err != nil {
		uc.logger.Errorw("failed to delete room type", "error", err, "room_type_id", roomTypeID)
		return fmt.Errorf("failed to delete room type: %w", err)
	}
	return nil
}
