package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"kostera/internal/domain/kost"
	"kostera/internal/infrastructure/persistence/models"
)

type KostMapper interface {
	ToEntity(model *models.KostModel) (*kost.Kost, error)
	ToModel(entity *kost.Kost) *models.KostModel
	ToEntities(models []*models.KostModel) ([]*kost.Kost, error)

	RoomTypeToEntity(model *models.RoomTypeModel) (*kost.RoomType, error)
	RoomTypeToModel(entity *kost.RoomType) (*models.RoomTypeModel, error)
	RoomTypesToEntities(models []*models.RoomTypeModel) ([]*kost.RoomType, error)

	RoomToEntity(model *models.RoomModel) (*kost.Room, error)
	RoomToModel(entity *kost.Room) *models.RoomModel
	RoomsToEntities(models []*models.RoomModel) ([]*kost.Room, error)
}

type KostMapperImpl struct{}

func NewKostMapper() KostMapper {
	return &KostMapperImpl{}
}

func (m *KostMapperImpl) ToEntity(model *models.KostModel) (*kost.Kost, error) {
	if model == nil {
		return nil, nil
	}

	return kost.ReconstructKost(
		model.ID,
		model.TenantID,
		model.Name,
		model.Address,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *KostMapperImpl) ToModel(entity *kost.Kost) *models.KostModel {
	if entity == nil {
		return nil
	}

	return &models.KostModel{
		ID:          entity.ID(),
		TenantID:    entity.TenantID(),
		Name:        entity.Name(),
		Address:     entity.Address(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *KostMapperImpl) ToEntities(kostModels []*models.KostModel) ([]*kost.Kost, error) {
	entities := make([]*kost.Kost, 0, len(kostModels))
	for _, km := range kostModels {
		entity, err := m.ToEntity(km)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *KostMapperImpl) RoomTypeToEntity(model *models.RoomTypeModel) (*kost.RoomType, error) {
	if model == nil {
		return nil, nil
	}

	var facilities []string
	if len(model.Facilities) > 0 {
		if err := json.Unmarshal(model.Facilities, &facilities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal facilities: %w", err)
		}
	}

	return kost.ReconstructRoomType(
		model.ID,
		model.TenantID,
		model.Name,
		model.BasePrice,
		facilities,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *KostMapperImpl) RoomTypeToModel(entity *kost.RoomType) (*models.RoomTypeModel, error) {
	if entity == nil {
		return nil, nil
	}

	var facilities datatypes.JSON
	if entity.Facilities() != nil {
		raw, err := json.Marshal(entity.Facilities())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal facilities: %w", err)
		}
		facilities = raw
	}

	return &models.RoomTypeModel{
		ID:         entity.ID(),
		TenantID:   entity.TenantID(),
		Name:       entity.Name(),
		BasePrice:  entity.BasePrice(),
		Facilities: facilities,
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *KostMapperImpl) RoomTypesToEntities(rtModels []*models.RoomTypeModel) ([]*kost.RoomType, error) {
	entities := make([]*kost.RoomType, 0, len(rtModels))
	for _, rtm := range rtModels {
		entity, err := m.RoomTypeToEntity(rtm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *KostMapperImpl) RoomToEntity(model *models.RoomModel) (*kost.Room, error) {
	if model == nil {
		return nil, nil
	}

	return kost.ReconstructRoom(
		model.ID,
		model.TenantID,
		model.KostID,
		model.RoomTypeID,
		model.RoomNumber,
		model.Price,
		kost.RoomStatus(model.Status),
		model.CurrentBookingID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *KostMapperImpl) RoomToModel(entity *kost.Room) *models.RoomModel {
	if entity == nil {
		return nil
	}

	return &models.RoomModel{
		ID:               entity.ID(),
		TenantID:         entity.TenantID(),
		KostID:           entity.KostID(),
		RoomTypeID:       entity.RoomTypeID(),
		RoomNumber:       entity.RoomNumber(),
		Price:            entity.Price(),
		Status:           entity.Status().String(),
		CurrentBookingID: entity.CurrentBookingID(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *KostMapperImpl) RoomsToEntities(roomModels []*models.RoomModel) ([]*kost.Room, error) {
	entities := make([]*kost.Room, 0, len(roomModels))
	for _, rm := range roomModels {
		entity, err := m.RoomToEntity(rm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
