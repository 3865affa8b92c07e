package seeds

import (
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kostera/internal/domain/apikey"
	"kostera/internal/infrastructure/persistence/models"
	"kostera/internal/shared/authorization"
	"kostera/internal/shared/biztime"
)

const demoTenantSlug = "kost-bahagia"

// demoAPIKey is a fixed key so the public API can be exercised right after
// seeding. Only its hash is stored.
const demoAPIKey = "kst_demo_public_api_key_do_not_use_in_production"

// SeedDemoTenant creates a fully populated demo workspace: tenant, owner,
// an active Pro subscription, one kost with a room type and five rooms,
// a customer and a public API key. Safe to run repeatedly.
func SeedDemoTenant(db *gorm.DB, ownerPasswordHash string) error {
	var existing models.TenantModel
	err := db.Where("slug = ?", demoTenantSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check demo tenant: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		tenant := models.TenantModel{
			Name:     "Kost Bahagia Group",
			Slug:     demoTenantSlug,
			Phone:    "+628123456789",
			Address:  "Jl. Mawar No. 1, Jakarta",
			IsActive: true,
		}
		if err := tx.Create(&tenant).Error; err != nil {
			return fmt.Errorf("failed to seed demo tenant: %w", err)
		}

		var ownerRole models.RoleModel
		if err := tx.Where("name = ?", authorization.RoleOwner.String()).First(&ownerRole).Error; err != nil {
			return fmt.Errorf("owner role missing, run role seeds first: %w", err)
		}
		owner := models.UserModel{
			Email:        "owner@kostbahagia.test",
			PasswordHash: ownerPasswordHash,
			FullName:     "Budi Santoso",
			TenantID:     &tenant.ID,
			IsActive:     true,
			Roles:        []models.RoleModel{ownerRole},
		}
		if err := tx.Create(&owner).Error; err != nil {
			return fmt.Errorf("failed to seed demo owner: %w", err)
		}

		var proPlan models.PlanModel
		if err := tx.Where("name = ?", "Pro").First(&proPlan).Error; err != nil {
			return fmt.Errorf("pro plan missing, run plan seeds first: %w", err)
		}
		now := biztime.NowUTC()
		sub := models.SubscriptionModel{
			TenantID:  tenant.ID,
			PlanID:    proPlan.ID,
			Status:    "ACTIVE",
			StartDate: now,
			EndDate:   now.AddDate(1, 0, 0),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return fmt.Errorf("failed to seed demo subscription: %w", err)
		}

		kost := models.KostModel{
			TenantID:    tenant.ID,
			Name:        "Kost Bahagia Pusat",
			Address:     "Jl. Mawar No. 1, Jakarta",
			Description: "Kost nyaman di pusat kota dekat stasiun.",
		}
		if err := tx.Create(&kost).Error; err != nil {
			return fmt.Errorf("failed to seed demo kost: %w", err)
		}

		roomType := models.RoomTypeModel{
			TenantID:   tenant.ID,
			Name:       "Deluxe AC",
			BasePrice:  1500000,
			Facilities: datatypes.JSON([]byte(`["AC","WiFi","Kamar Mandi Dalam"]`)),
		}
		if err := tx.Create(&roomType).Error; err != nil {
			return fmt.Errorf("failed to seed demo room type: %w", err)
		}

		for i := 1; i <= 5; i++ {
			room := models.RoomModel{
				TenantID:   tenant.ID,
				KostID:     kost.ID,
				RoomTypeID: &roomType.ID,
				RoomNumber: fmt.Sprintf("10%d", i),
				Price:      roomType.BasePrice,
				Status:     "AVAILABLE",
			}
			if err := tx.Create(&room).Error; err != nil {
				return fmt.Errorf("failed to seed demo room %s: %w", room.RoomNumber, err)
			}
		}

		customer := models.CustomerModel{
			TenantID:  tenant.ID,
			FullName:  "Siti Aminah",
			Phone:     "+628987654321",
			Email:     "siti@example.test",
			KTPNumber: "3171234567890001",
			Address:   "Jl. Melati No. 5, Bandung",
		}
		if err := tx.Create(&customer).Error; err != nil {
			return fmt.Errorf("failed to seed demo customer: %w", err)
		}

		key := models.APIKeyModel{
			TenantID: tenant.ID,
			KeyHash:  apikey.HashKey(demoAPIKey),
			IsActive: true,
		}
		if err := tx.Create(&key).Error; err != nil {
			return fmt.Errorf("failed to seed demo api key: %w", err)
		}

		return nil
	})
}
