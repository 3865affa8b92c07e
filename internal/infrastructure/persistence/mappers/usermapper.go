package mappers

import (
	"kostera/internal/domain/user"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/authorization"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	roles := make([]authorization.Role, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, authorization.Role(r.Name))
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.FullName,
		model.TenantID,
		roles,
		model.IsActive,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel maps everything except role associations. Role rows live in the
// global catalog and are attached by the repository, not created here.
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		FullName:     entity.Name(),
		TenantID:     entity.TenantID(),
		IsActive:     entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, um := range userModels {
		entity, err := m.ToEntity(um)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
