package mappers

import (
	"kostera/internal/domain/apikey"
	"kostera/internal/infrastructure/persistence/models"
)

type APIKeyMapper interface {
	ToEntity(model *models.APIKeyModel) (*apikey.APIKey, error)
	ToModel(entity *apikey.APIKey) *models.APIKeyModel
	ToEntities(models []*models.APIKeyModel) ([]*apikey.APIKey, error)
}

type APIKeyMapperImpl struct{}

func NewAPIKeyMapper() APIKeyMapper {
	return &APIKeyMapperImpl{}
}

func (m *APIKeyMapperImpl) ToEntity(model *models.APIKeyModel) (*apikey.APIKey, error) {
	if model == nil {
		return nil, nil
	}

	return apikey.ReconstructAPIKey(
		model.ID,
		model.TenantID,
		model.KeyHash,
		model.IsActive,
		model.CreatedAt,
	)
}

func (m *APIKeyMapperImpl) ToModel(entity *apikey.APIKey) *models.APIKeyModel {
	if entity == nil {
		return nil
	}

	return &models.APIKeyModel{
		ID:        entity.ID(),
		TenantID:  entity.TenantID(),
		KeyHash:   entity.KeyHash(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *APIKeyMapperImpl) ToEntities(keyModels []*models.APIKeyModel) ([]*apikey.APIKey, error) {
	entities := make([]*apikey.APIKey, 0, len(keyModels))
	for _, km := range keyModels {
		entity, err := m.ToEntity(km)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
