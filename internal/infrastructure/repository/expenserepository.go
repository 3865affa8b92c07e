package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/finance"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ExpenseMapper
	logger logger.Interface
}

func NewExpenseRepository(db *gorm.DB, logger logger.Interface) finance.ExpenseRepository {
	return &ExpenseRepositoryImpl{
		db:     db,
		mapper: mappers.NewExpenseMapper(),
		logger: logger,
	}
}

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, expense *finance.Expense) error {
	model := r.mapper.ToModel(expense)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create expense", "tenant_id", model.TenantID, "error", err)
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if err := expense.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set expense ID: %w", err)
	}

	return nil
}

func (r *ExpenseRepositoryImpl) GetByID(ctx context.Context, id uint) (*finance.Expense, error) {
	var model models.ExpenseModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		r.logger.Errorw("failed to get expense by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.ExpenseModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete expense", "id", id, "error", err)
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint) ([]*finance.Expense, error) {
	var expenseModels []*models.ExpenseModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Order("expense_date DESC").
		Find(&expenseModels).Error; err != nil {
		r.logger.Errorw("failed to list expenses", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return r.mapper.ToEntities(expenseModels)
}

func (r *ExpenseRepositoryImpl) SumByTenant(ctx context.Context, tenantID uint) (uint64, error) {
	var total *uint64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ExpenseModel{}).
		Select("SUM(amount)").
		Scopes(db.ForTenant(tenantID)).
		Scan(&total).Error; err != nil {
		r.logger.Errorw("failed to sum expenses", "tenant_id", tenantID, "error", err)
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}

	if total == nil {
		return 0, nil
	}
	return *total, nil
}
