package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/domain/subscription"
	vo "kostera/internal/domain/subscription/valueobjects"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/db"
	"kostera/internal/shared/logger"
)

// UsageCounterImpl answers live resource counts for plan limit checks. Counts
// always hit the current rows; nothing is cached.
type UsageCounterImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUsageCounter(db *gorm.DB, logger logger.Interface) subscription.UsageCounter {
	return &UsageCounterImpl{db: db, logger: logger}
}

func (c *UsageCounterImpl) CountFor(ctx context.Context, tenantID uint, resource vo.LimitResource) (int64, error) {
	tx := db.GetTxFromContext(ctx, c.db)

	var (
		count int64
		err   error
	)
	switch resource {
	case vo.LimitRooms:
		err = tx.Model(&models.RoomModel{}).Scopes(db.ForTenant(tenantID)).Count(&count).Error
	case vo.LimitKosts:
		err = tx.Model(&models.KostModel{}).Scopes(db.ForTenant(tenantID)).Count(&count).Error
	case vo.LimitStaff:
		err = tx.Model(&models.UserModel{}).
			Joins("JOIN user_roles ON user_roles.user_model_id = users.id").
			Joins("JOIN roles ON roles.id = user_roles.role_model_id").
			Where("users.tenant_id = ? AND roles.name = ? AND users.deleted_at IS NULL",
				tenantID, authorization.RoleStaff.String()).
			Count(&count).Error
	default:
		return 0, fmt.Errorf("unknown limit resource: %s", resource)
	}

	if err != nil {
		c.logger.Errorw("failed to count resource usage", "tenant_id", tenantID, "resource", resource, "error", err)
		return 0, fmt.Errorf("failed to count %s: %w", resource, err)
	}
	return count, nil
}
