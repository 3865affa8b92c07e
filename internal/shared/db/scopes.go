package db

import (
	"gorm.io/gorm"
)

// ForTenant is a GORM scope that restricts a query to a single tenant's
// rows. Every tenant-owned table carries a tenant_id column; all reads
// and writes on behalf of a non-superadmin caller must apply this scope.
//
// Example usage:
//
//	db.Model(&RoomModel{}).Scopes(db.ForTenant(tenantID)).Count(&count)
func ForTenant(tenantID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// NotDeleted is a GORM scope that filters out soft-deleted records.
// Use this scope when querying with Model().Where().Count() or similar
// patterns that may not automatically apply soft delete filtering.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("deleted_at IS NULL")
	}
}
