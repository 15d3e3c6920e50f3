package migration

import (
	"Inventory-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Migrate creates the user_auth and user_item tables. phone_number carries
// no unique index on purpose: uniqueness is the signup pre-check's job, and
// a constraint here would change the observable duplicate-signup behavior.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.UserAuth{}); err != nil {
		log.Fatalf("Error migrating user auth database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Item{}); err != nil {
		log.Fatalf("Error migrating item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
