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

type KostRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.KostMapper
	logger logger.Interface
}

func NewKostRepository(db *gorm.DB, logger logger.Interface) kost.KostRepository {
	return &KostRepositoryImpl{
		db:     db,
		mapper: mappers.NewKostMapper(),
		logger: logger,
	}
}

func (r *KostRepositoryImpl) Create(ctx context.Context, kostEntity *kost.Kost) error {
	model := r.mapper.ToModel(kostEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create kost", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create kost: %w", err)
	}

	if err := kostEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set kost ID: %w", err)
	}

	r.logger.Infow("kost created", "id", model.ID, "tenant_id", model.TenantID)
	return nil
}

func (r *KostRepositoryImpl) GetByID(ctx context.Context, id uint) (*kost.Kost, error) {
	var model models.KostModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kost.ErrKostNotFound
		}
		r.logger.Errorw("failed to get kost by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get kost: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *KostRepositoryImpl) Update(ctx context.Context, kostEntity *kost.Kost) error {
	model := r.mapper.ToModel(kostEntity)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update kost", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update kost: %w", err)
	}

	return nil
}

func (r *KostRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.KostModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete kost", "id", id, "error", err)
		return fmt.Errorf("failed to delete kost: %w", err)
	}
	return nil
}

func (r *KostRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*kost.Kost, error) {
	var kostModels []*models.KostModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("created_at ASC").
		Find(&kostModels).Error; err != nil {
		r.logger.Errorw("failed to list kosts", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list kosts: %w", err)
	}

	return r.mapper.ToEntities(kostModels)
}

func (r *KostRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.KostModel{}).
		Scopes(db.ForTenant(tenantID)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count kosts: %w", err)
	}

	return count, nil
}
