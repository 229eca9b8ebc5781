package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"barberbook-backend/config"
	"barberbook-backend/controllers"
	"barberbook-backend/utils"
)

// Controllers bundles the handler sets the router wires up.
type Controllers struct {
	Booking   *controllers.BookingController
	Auth      *controllers.AuthController
	Dashboard *controllers.DashboardController
}

func SetupRouter(ctrl Controllers, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(log))

	api := r.Group("/api")
	{
		api.GET("/services", controllers.GetServices)
		api.GET("/gallery", controllers.GetGallery)
		api.GET("/contact", controllers.GetContact)
		api.GET("/timeslots", controllers.GetTimeSlots)

		api.GET("/availability", ctrl.Booking.GetAvailability)
		api.POST("/bookings", ctrl.Booking.CreateBooking)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", ctrl.Auth.Login)

		admin.Use(utils.AuthMiddleware())
		admin.GET("/bookings", ctrl.Booking.GetBookings)
		admin.DELETE("/bookings/:id", ctrl.Booking.DeleteBooking)
		admin.GET("/dashboard", ctrl.Dashboard.GetDashboardOverview)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{
		"https://ajjubhaibarber.com",
		"http://localhost:3000",
		"http://localhost:5173",
	}
}
