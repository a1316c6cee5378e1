package main

import (
	"fmt"
	"log"
	"os"

	"radam-backend/config"
	"radam-backend/controllers"
	"radam-backend/models"
	"radam-backend/routes"
	"radam-backend/seed"
	"radam-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.PortfolioItem{},
		&models.PortfolioImage{},
		&models.Booking{},
		&models.Contact{},
	)
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seed.Run(config.DB); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Database seeded")
		return
	}

	if err := bootstrapAdmin(); err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}

	controllers.Uploader = services.NewCloudinaryService()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// bootstrapAdmin creates the admin user from ADMIN_EMAIL/ADMIN_PASSWORD
// if it does not exist yet.
func bootstrapAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := models.User{Username: "admin", Email: email}
	if err := admin.SetPassword(password); err != nil {
		return err
	}
	return config.DB.Create(&admin).Error
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
