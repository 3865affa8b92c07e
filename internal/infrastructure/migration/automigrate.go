package migration

import (
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TenantModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.RoleModel{},
		&models.UserModel{},
		&models.KostModel{},
		&models.RoomTypeModel{},
		&models.RoomModel{},
		&models.CustomerModel{},
		&models.BookingModel{},
		&models.InvoiceModel{},
		&models.PaymentModel{},
		&models.ExpenseModel{},
		&models.APIKeyModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema from model struct definitions.
// Used in development; deployments run versioned SQL scripts instead.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
