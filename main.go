package main

import (
	"log"
	"os"

	"github.com/dangqh/seafresh/config"
	"github.com/dangqh/seafresh/controllers"
	"github.com/dangqh/seafresh/routes"
	"github.com/dangqh/seafresh/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	if _, err := config.LoadConfig(); err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Statistics cache, optional
	config.InitRedis()

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Create the back-office account on first run
	if err := controllers.EnsureAdminUser(); err != nil {
		utils.LogError("Failed to ensure admin user: %v", err)
		log.Fatal("Failed to ensure admin user:", err)
	}

	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
