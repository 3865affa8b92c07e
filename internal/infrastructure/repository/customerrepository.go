package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/customer"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customerEntity *customer.Customer) error {
	model := r.mapper.ToModel(customerEntity)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := customerEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set customer ID: %w", err)
	}

	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		r.logger.Errorw("failed to get customer by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customerEntity *customer.Customer) error {
	model := r.mapper.ToModel(customerEntity)

	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update customer", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update customer: %w", err)
	}

	return nil
}

func (r *CustomerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.CustomerModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete customer", "id", id, "error", err)
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*customer.Customer, error) {
	var customerModels []*models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("created_at DESC").
		Find(&customerModels).Error; err != nil {
		r.logger.Errorw("failed to list customers", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return r.mapper.ToEntities(customerModels)
}
