package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/authorization"
)

// SeedRoles seeds the global role catalog. Levels are stored for reference
// only and are never compared.
func SeedRoles(db *gorm.DB) error {
	roles := []models.RoleModel{
		{Name: authorization.RoleSuperadmin.String(), Level: 99},
		{Name: authorization.RoleOwner.String(), Level: 50},
		{Name: authorization.RoleStaff.String(), Level: 10},
		{Name: authorization.RoleTenantStaff.String(), Level: 10},
		{Name: authorization.RoleCustomer.String(), Level: 1},
	}

	for _, role := range roles {
		if err := db.Where("name = ?", role.Name).FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}

// SeedPlans seeds the plan catalog. Basic is the trial default; there is no
// kost limit column since the ceiling follows AllowMultiBranch.
func SeedPlans(db *gorm.DB) error {
	plans := []models.PlanModel{
		{
			Name:        "Basic",
			Price:       150000,
			MaxRooms:    10,
			MaxStaff:    1,
			MaxAPICalls: 1000,
		},
		{
			Name:             "Pro",
			Price:            450000,
			MaxRooms:         50,
			MaxStaff:         5,
			MaxAPICalls:      10000,
			AllowMultiBranch: true,
			AllowFinance:     true,
			AllowExport:      true,
		},
		{
			Name:             "Enterprise",
			Price:            1500000,
			MaxRooms:         9999,
			MaxStaff:         9999,
			MaxAPICalls:      100000,
			AllowMultiBranch: true,
			AllowFinance:     true,
			AllowExport:      true,
		},
	}

	for _, plan := range plans {
		if err := db.Where("name = ?", plan.Name).FirstOrCreate(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", plan.Name, err)
		}
	}
	return nil
}

// SeedSuperadmin creates the platform operator account if it does not exist.
// The password hash must be produced by the caller; seeds do not hash.
func SeedSuperadmin(db *gorm.DB, email, passwordHash string) error {
	var existing models.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check superadmin: %w", err)
	}

	var role models.RoleModel
	if err := db.Where("name = ?", authorization.RoleSuperadmin.String()).First(&role).Error; err != nil {
		return fmt.Errorf("superadmin role missing, run role seeds first: %w", err)
	}

	admin := models.UserModel{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     "Platform Admin",
		IsActive:     true,
		Roles:        []models.RoleModel{role},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}
	return nil
}

// SeedAll runs every catalog seed in order.
func SeedAll(db *gorm.DB, superadminEmail, superadminPasswordHash string) error {
	if err := SeedRoles(db); err != nil {
		return err
	}
	if err := SeedPlans(db); err != nil {
		return err
	}
	return SeedSuperadmin(db, superadminEmail, superadminPasswordHash)
}
