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

type RoomTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.KostMapper
	logger logger.Interface
}

func NewRoomTypeRepository(db *gorm.DB, logger logger.Interface) kost.RoomTypeRepository {
	return &RoomTypeRepositoryImpl{
		db:     db,
		mapper: mappers.NewKostMapper(),
		logger: logger,
	}
}

func (r *RoomTypeRepositoryImpl) Create(ctx context.Context, roomType *kost.RoomType) error {
	model, err := r.mapper.RoomTypeToModel(roomType)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create room type", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create room type: %w", err)
	}

	if err := roomType.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set room type ID: %w", err)
	}

	return nil
}

func (r *RoomTypeRepositoryImpl) GetByID(ctx context.Context, id uint) (*kost.RoomType, error) {
	var model models.RoomTypeModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kost.ErrRoomTypeNotFound
		}
		r.logger.Errorw("failed to get room type by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get room type: %w", err)
	}

	return r.mapper.RoomTypeToEntity(&model)
}

func (r *RoomTypeRepositoryImpl) Update(ctx context.Context, roomType *kost.RoomType) error {
	model, err := r.mapper.RoomTypeToModel(roomType)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update room type", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update room type: %w", err)
	}

	return nil
}

func (r *RoomTypeRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.RoomTypeModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete room type", "id", id, "error", err)
		return fmt.Errorf("failed to delete room type: %w", err)
	}
	return nil
}

func (r *RoomTypeRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*kost.RoomType, error) {
	var rtModels []*models.RoomTypeModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("base_price ASC").
		Find(&rtModels).Error; err != nil {
		r.logger.Errorw("failed to list room types", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}

	return r.mapper.RoomTypesToEntities(rtModels)
}
