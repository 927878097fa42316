package main

import (
	"log"
	"net/http"
	"time"

	"github.com/fransrichy/NKFINANCIAL/config"
	"github.com/fransrichy/NKFINANCIAL/handlers/applications"
	"github.com/fransrichy/NKFINANCIAL/handlers/contact"
	"github.com/fransrichy/NKFINANCIAL/migrations"
	"github.com/fransrichy/NKFINANCIAL/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	cfg := config.Load()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// The frontend expects a JSON envelope on every response, including
	// wrong-method and unknown-path requests.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "Invalid request method",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Not found",
		})
	})

	utils.ConnectDatabase(cfg)
	utils.ConfigureMailer(cfg)

	migrations.MigrateContactMessages()
	migrations.MigrateLoanApplications()

	contact.RegisterContactRoutes(r)
	applications.RegisterApplicationRoutes(r, cfg)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
