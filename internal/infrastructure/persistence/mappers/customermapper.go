package mappers

import (
	"kostera/internal/domain/customer"
	"kostera/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToEntity(model *models.CustomerModel) (*customer.Customer, error)
	ToModel(entity *customer.Customer) *models.CustomerModel
	ToEntities(models []*models.CustomerModel) ([]*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToEntity(model *models.CustomerModel) (*customer.Customer, error) {
	if model == nil {
		return nil, nil
	}

	return customer.ReconstructCustomer(
		model.ID,
		model.TenantID,
		model.FullName,
		model.Phone,
		model.Email,
		model.KTPNumber,
		model.Address,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *CustomerMapperImpl) ToModel(entity *customer.Customer) *models.CustomerModel {
	if entity == nil {
		return nil
	}

	return &models.CustomerModel{
		ID:        entity.ID(),
		TenantID:  entity.TenantID(),
		FullName:  entity.FullName(),
		Phone:     entity.Phone(),
		Email:     entity.Email(),
		KTPNumber: entity.KTPNumber(),
		Address:   entity.Address(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *CustomerMapperImpl) ToEntities(customerModels []*models.CustomerModel) ([]*customer.Customer, error) {
	entities := make([]*customer.Customer, 0, len(customerModels))
	for _, cm := range customerModels {
		entity, err := m.ToEntity(cm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
