package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/tenant"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.TenantRepository {
	return &TenantRepositoryImpl{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, tenantEntity *tenant.Tenant) error {
	model := r.mapper.ToModel(tenantEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant", "slug", model.Slug, "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := tenantEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tenant ID: %w", err)
	}

	r.logger.Infow("tenant created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *TenantRepositoryImpl) GetByID(ctx context.Context, id uint) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		r.logger.Errorw("failed to get tenant by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TenantRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*tenant.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tenant.ErrTenantNotFound
		}
		r.logger.Errorw("failed to get tenant by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, tenantEntity *tenant.Tenant) error {
	model := r.mapper.ToModel(tenantEntity)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update tenant", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

func (r *TenantRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*tenant.Tenant, int64, error) {
	var (
		tenantModels []*models.TenantModel
		total        int64
	)

	query := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&tenantModels).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	entities, err := r.mapper.ToEntities(tenantModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *TenantRepositoryImpl) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TenantModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check tenant slug: %w", err)
	}

	return count > 0, nil
}
