package mappers

import (
	"kostera/internal/domain/subscription"
	"kostera/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*subscription.Plan, error)
	ToModel(entity *subscription.Plan) *models.PlanModel
	ToEntities(models []*models.PlanModel) ([]*subscription.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*subscription.Plan, error) {
	if model == nil {
		return nil, nil
	}

	return subscription.ReconstructPlan(
		model.ID,
		model.Name,
		model.Price,
		model.MaxRooms,
		model.MaxStaff,
		model.MaxAPICalls,
		model.AllowMultiBranch,
		model.AllowFinance,
		model.AllowExport,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *PlanMapperImpl) ToModel(entity *subscription.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	return &models.PlanModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		Price:            entity.Price(),
		MaxRooms:         entity.MaxRooms(),
		MaxStaff:         entity.MaxStaff(),
		MaxAPICalls:      entity.MaxAPICalls(),
		AllowMultiBranch: entity.AllowMultiBranch(),
		AllowFinance:     entity.AllowFinance(),
		AllowExport:      entity.AllowExport(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*subscription.Plan, error) {
	entities := make([]*subscription.Plan, 0, len(planModels))
	for _, pm := range planModels {
		entity, err := m.ToEntity(pm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
