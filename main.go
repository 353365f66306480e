package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"biketrak-api/config"
	"biketrak-api/database"
	"biketrak-api/middleware"
	"biketrak-api/routes"
	"biketrak-api/services"
	"biketrak-api/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database; no traffic is accepted until the ping succeeds
	client, err := database.Initialize(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Printf("Failed to disconnect from database: %v", err)
		}
	}()

	if err := database.EnsureIndexes(client, cfg.DBName); err != nil {
		log.Fatal("Failed to ensure indexes: ", err)
	}

	// Image upload directory
	images, err := storage.NewImageStore(cfg.PublicDir)
	if err != nil {
		log.Fatal("Failed to prepare upload directory: ", err)
	}

	emailService := services.NewEmailService(cfg)

	// Set Gin mode based on environment
	if cfg.Port == "3001" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	router.Use(middleware.SetupCORS())
	router.Use(middleware.SecurityHeaders())

	// Setup routes
	routes.SetupRoutes(router, client.Database(cfg.DBName), cfg, emailService, images)

	// Start server
	log.Printf("Starting Biketrak API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
