package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/user"
	"kostera/internal/infrastructure/persistence/mappers"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, userEntity *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(userEntity)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := r.attachRoles(tx, model, userEntity.Roles()); err != nil {
		return err
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// attachRoles links the user to catalog role rows by name. Unknown role
// names are an error; the catalog is seeded, never created on the fly.
func (r *UserRepositoryImpl) attachRoles(tx *gorm.DB, model *models.UserModel, roles []authorization.Role) error {
	if len(roles) == 0 {
		return nil
	}

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}

	var roleModels []models.RoleModel
	if err := tx.Where("name IN ?", names).Find(&roleModels).Error; err != nil {
		return fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roleModels) != len(names) {
		return fmt.Errorf("unknown role in %v", names)
	}

	if err := tx.Model(model).Association("Roles").Replace(roleModels); err != nil {
		return fmt.Errorf("failed to assign roles: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Preload("Roles").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Preload("Roles").Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, userEntity *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(userEntity)

	if err := tx.Save(model).Error; err != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return r.attachRoles(tx, model, userEntity.Roles())
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *UserRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint, page, pageSize int) ([]*user.User, int64, error) {
	var (
		userModels []*models.UserModel
		total      int64
	)

	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := query.Preload("Roles").Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users by tenant", "tenant_id", tenantID, "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *UserRepositoryImpl) ListByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) ([]*user.User, error) {
	var userModels []*models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).
		Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_model_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_model_id").
		Where("users.tenant_id = ? AND roles.name = ?", tenantID, role.String()).
		Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users by role", "tenant_id", tenantID, "role", role, "error", err)
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.mapper.ToEntities(userModels)
}

func (r *UserRepositoryImpl) CountByTenantAndRole(ctx context.Context, tenantID uint, role authorization.Role) (int64, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Joins("JOIN user_roles ON user_roles.user_model_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_model_id").
		Where("users.tenant_id = ? AND roles.name = ? AND users.deleted_at IS NULL", tenantID, role.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count users by role", "tenant_id", tenantID, "role", role, "error", err)
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return count > 0, nil
}
