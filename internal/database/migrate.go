package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-order-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the catalog and order tables.
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.Pizza{},
		&models.Extra{},
		&models.Order{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
