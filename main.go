package main

import (
	"log"

	"tastebook/cmd/config"
	"tastebook/internal/utils"
	"tastebook/pkg/storage"
)

func main() {
	utils.LoadConfig()

	store, err := config.ConnectStore()
	if err != nil {
		log.Fatalf("error setting up document store: %v", err)
	}

	db := storage.NewDatabase(store)

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error starting app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error running app: %v", err)
	}
}
