package config

import (
	"fmt"
	"log"

	migration "tastebook/cmd/database/migrate"
	"tastebook/internal/utils"
	"tastebook/pkg/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectStore picks the document store backend from configuration.
// "postgres" keeps documents in a jsonb table; anything else falls back
// to plain JSON files under DATA_DIR.
func ConnectStore() (storage.DocumentStore, error) {
	if utils.GetConfig("STORAGE_BACKEND") != "postgres" {
		return storage.NewFileStore(utils.GetConfig("DATA_DIR"))
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed: %v", err)
		return nil, err
	}

	if err := migration.Migrate(db); err != nil {
		return nil, err
	}

	return storage.NewPostgresStore(db), nil
}
