package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/apikey"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type APIKeyRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.APIKeyMapper
	logger logger.Interface
}

func NewAPIKeyRepository(db *gorm.DB, logger logger.Interface) apikey.APIKeyRepository {
	return &APIKeyRepositoryImpl{
		db:     db,
		mapper: mappers.NewAPIKeyMapper(),
		logger: logger,
	}
}

func (r *APIKeyRepositoryImpl) Create(ctx context.Context, key *apikey.APIKey) error {
	model := r.mapper.ToModel(key)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create api key", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create api key: %w", err)
	}

	if err := key.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set api key ID: %w", err)
	}

	r.logger.Infow("api key created", "id", model.ID, "tenant_id", model.TenantID)
	return nil
}

func (r *APIKeyRepositoryImpl) GetActiveByHash(ctx context.Context, keyHash string) (*apikey.APIKey, error) {
	var model models.APIKeyModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("key_hash = ? AND is_active = ?", keyHash, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apikey.ErrAPIKeyNotFound
		}
		r.logger.Errorw("failed to look up api key", "error", err)
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *APIKeyRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*apikey.APIKey, error) {
	var keyModels []*models.APIKeyModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		r.logger.Errorw("failed to list api keys", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}

	return r.mapper.ToEntities(keyModels)
}

func (r *APIKeyRepositoryImpl) Revoke(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.APIKeyModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		r.logger.Errorw("failed to revoke api key", "id", id, "error", result.Error)
		return fmt.Errorf("failed to revoke api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apikey.ErrAPIKeyNotFound
	}
	return nil
}
