package mappers

import (
	"kostera/internal/domain/finance"
	"kostera/internal/infrastructure/persistence/models"
)

type ExpenseMapper interface {
	ToEntity(model *models.ExpenseModel) (*finance.Expense, error)
	ToModel(entity *finance.Expense) *models.ExpenseModel
	ToEntities(models []*models.ExpenseModel) ([]*finance.Expense, error)
}

type ExpenseMapperImpl struct{}

func NewExpenseMapper() ExpenseMapper {
	return &ExpenseMapperImpl{}
}

func (m *ExpenseMapperImpl) ToEntity(model *models.ExpenseModel) (*finance.Expense, error) {
	if model == nil {
		return nil, nil
	}

	return finance.ReconstructExpense(
		model.ID,
		model.TenantID,
		model.Title,
		model.Amount,
		model.Category,
		model.ExpenseDate,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ExpenseMapperImpl) ToModel(entity *finance.Expense) *models.ExpenseModel {
	if entity == nil {
		return nil
	}

	return &models.ExpenseModel{
		ID:          entity.ID(),
		TenantID:    entity.TenantID(),
		Title:       entity.Title(),
		Amount:      entity.Amount(),
		Category:    entity.Category(),
		ExpenseDate: entity.ExpenseDate(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ExpenseMapperImpl) ToEntities(expenseModels []*models.ExpenseModel) ([]*finance.Expense, error) {
	entities := make([]*finance.Expense, 0, len(expenseModels))
	for _, em := range expenseModels {
		entity, err := m.ToEntity(em)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
