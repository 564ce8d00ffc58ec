package routes

import (
	"net/http"
	"time"

	"groomingshop-backend/config"
	"groomingshop-backend/controllers"
	"groomingshop-backend/services"
	"groomingshop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services over db into the HTTP surface.
func SetupRouter(cfg *config.Config, db *gorm.DB, tokens *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(config.RequestLogger())

	authService := services.NewAuthService(db)
	catalogService := services.NewCatalogService(db, cfg.Catalog.LenientPrice)
	bookingService := services.NewBookingService(db, cfg.Booking.StrictServiceRef)

	authController := controllers.NewAuthController(authService, tokens, cfg.IsRelease())
	bookingController := controllers.NewBookingController(bookingService)
	serviceController := controllers.NewServiceController(catalogService)
	petController := controllers.NewPetController(catalogService)
	dashboardController := controllers.NewDashboardController(bookingService, catalogService)
	reportController := controllers.NewReportController(bookingService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.GET("/me", utils.AuthMiddleware(tokens), authController.RequireCaller(), authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(tokens), authController.RequireCaller())
	{
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingController.CreateBooking)
			bookings.GET("", bookingController.GetBookings)
			bookings.GET("/:id", bookingController.GetBooking)
			bookings.PUT("/:id", bookingController.UpdateBooking)
			bookings.PATCH("/:id/status", bookingController.UpdateStatus)
			bookings.DELETE("/:id", bookingController.DeleteBooking)
		}

		catalog := api.Group("/services")
		{
			catalog.POST("", serviceController.CreateService)
			catalog.GET("", serviceController.GetServices)
			catalog.GET("/:id", serviceController.GetService)
			catalog.PUT("/:id", serviceController.UpdateService)
		}

		pets := api.Group("/pets")
		{
			pets.POST("", petController.RegisterPet)
			pets.GET("", petController.GetPets)
		}

		api.GET("/reports/revenue", reportController.GetRevenueReport)
	}

	return r
}
