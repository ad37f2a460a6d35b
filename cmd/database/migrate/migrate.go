package migration

import (
	"fmt"
	"log"

	"tastebook/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Document{}); err != nil {
		log.Printf("Error migrating documents table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
