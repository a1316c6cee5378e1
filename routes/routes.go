package routes

import (
	"os"
	"strings"

	"radam-backend/config"
	"radam-backend/controllers"
	"radam-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000", "https://radamconstruction.com"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to Radam Construction API"})
	})

	r.POST("/login", controllers.Login)
	r.GET("/me", utils.AuthMiddleware(), controllers.Me)

	// Service routes: public reads carry the requester identity when a
	// token is present so nested bookings can be narrowed.
	services := r.Group("/services")
	{
		services.GET("", utils.OptionalAuthMiddleware(), controllers.GetServices)
		services.GET("/:id", utils.OptionalAuthMiddleware(), controllers.GetService)
		services.POST("", utils.AuthMiddleware(), controllers.CreateService)
		services.PUT("/:id", utils.AuthMiddleware(), controllers.UpdateService)
		services.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteService)
	}

	// Booking routes: submission is public, status changes are admin-only
	bookings := r.Group("/bookings")
	{
		bookings.GET("", controllers.GetBookings)
		bookings.GET("/:id", controllers.GetBooking)
		bookings.POST("", controllers.CreateBooking)
		bookings.PUT("/:id", utils.AuthMiddleware(), controllers.UpdateBooking)
		bookings.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteBooking)
	}

	// Portfolio routes
	portfolio := r.Group("/portfolio")
	{
		portfolio.GET("", controllers.GetPortfolioItems)
		portfolio.GET("/:id", controllers.GetPortfolioItem)
		portfolio.POST("", utils.AuthMiddleware(), controllers.CreatePortfolioItem)
		portfolio.PUT("/:id", utils.AuthMiddleware(), controllers.UpdatePortfolioItem)
		portfolio.DELETE("/:id", utils.AuthMiddleware(), controllers.DeletePortfolioItem)
	}

	// Contact routes: submission is public, reading is admin-only
	contacts := r.Group("/contacts")
	{
		contacts.GET("", utils.AuthMiddleware(), controllers.GetContacts)
		contacts.GET("/:id", utils.AuthMiddleware(), controllers.GetContact)
		contacts.POST("", controllers.CreateContact)
		contacts.DELETE("/:id", utils.AuthMiddleware(), controllers.DeleteContact)
	}

	return r
}
