// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/sansadwatch/loksabha-backend/config"
	"github.com/sansadwatch/loksabha-backend/database"
	"github.com/sansadwatch/loksabha-backend/handlers"
)

func main() {
	log.Println("Starting Lok Sabha Database API...")

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "../config/config.yaml"
		if _, errFallback := os.Stat(configPath); os.IsNotExist(errFallback) {
			log.Fatalf("Config file not found at default paths. Error: %v", errFallback)
		}
	}

	err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, DB name: %s",
		config.AppConfig.Server.Port, config.AppConfig.Database.DBName)

	err = database.InitDB(config.AppConfig.Database)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer database.CloseDB()

	router := handlers.NewRouter()

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	err = http.ListenAndServe(serverAddr, router)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
