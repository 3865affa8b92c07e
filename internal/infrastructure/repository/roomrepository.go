package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/kost"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type RoomRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.KostMapper
	logger logger.Interface
}

func NewRoomRepository(db *gorm.DB, logger logger.Interface) kost.RoomRepository {
	return &RoomRepositoryImpl{
		db:     db,
		mapper: mappers.NewKostMapper(),
		logger: logger,
	}
}

func (r *RoomRepositoryImpl) Create(ctx context.Context, room *kost.Room) error {
	model := r.mapper.RoomToModel(room)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create room", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create room: %w", err)
	}

	if err := room.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set room ID: %w", err)
	}

	r.logger.Infow("room created", "id", model.ID, "tenant_id", model.TenantID, "kost_id", model.KostID)
	return nil
}

func (r *RoomRepositoryImpl) GetByID(ctx context.Context, id uint) (*kost.Room, error) {
	var model models.RoomModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kost.ErrRoomNotFound
		}
		r.logger.Errorw("failed to get room by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return r.mapper.RoomToEntity(&model)
}

func (r *RoomRepositoryImpl) Update(ctx context.Context, room *kost.Room) error {
	model := r.mapper.RoomToModel(room)

	// Save skips nil pointer columns on update, so clear current_booking_id
	// explicitly when the room is released.
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update room", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update room: %w", err)
	}
	if model.CurrentBookingID == nil {
		if err := tx.Model(&models.RoomModel{}).
			Where("id = ?", model.ID).
			Update("current_booking_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear room booking: %w", err)
		}
	}

	return nil
}

func (r *RoomRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.RoomModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete room", "id", id, "error", err)
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (r *RoomRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint, kostID *uint) ([]*kost.Room, error) {
	var roomModels []*models.RoomModel

	query := db.GetTxFromContext(ctx, r.db).Scopes(db.ForTenant(tenantID))
	if kostID != nil {
		query = query.Where("kost_id = ?", *kostID)
	}

	if err := query.Order("room_number ASC").Find(&roomModels).Error; err != nil {
		r.logger.Errorw("failed to list rooms", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return r.mapper.RoomsToEntities(roomModels)
}

func (r *RoomRepositoryImpl) ListAvailableByTenant(ctx context.Context, tenantID uint) ([]*kost.Room, error) {
	var roomModels []*models.RoomModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("status = ?", kost.RoomStatusAvailable.String()).
		Order("room_number ASC").
		Find(&roomModels).Error; err != nil {
		r.logger.Errorw("failed to list available rooms", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return r.mapper.RoomsToEntities(roomModels)
}

func (r *RoomRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.RoomModel{}).
		Scopes(db.ForTenant(tenantID)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return count, nil
}
