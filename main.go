package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"barberbook-backend/config"
	"barberbook-backend/controllers"
	"barberbook-backend/metrics"
	"barberbook-backend/routes"
	"barberbook-backend/services"
	"barberbook-backend/store"
	"barberbook-backend/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	logger := config.NewLogger()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := db.AutoMigrate(&store.StorageEntry{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate storage")
	}

	metrics.Register()

	notifier := services.NotifierFromEnv(logger)
	bookingService := services.NewBookingService(store.NewGormStore(db, logger), notifier, logger)

	if os.Getenv("REMINDERS_ENABLED") == "true" {
		sender, ok := notifier.(services.TextSender)
		if !ok {
			logger.Fatal().Msg("configured notifier cannot send reminders")
		}
		reminders := services.NewReminderService(bookingService, sender, logger)
		reminders.StartScheduler()
	}

	ctrl := routes.Controllers{
		Booking:   controllers.NewBookingController(bookingService),
		Auth:      controllers.NewAuthController(utils.AuthenticatorFromEnv()),
		Dashboard: controllers.NewDashboardController(bookingService),
	}

	r := routes.SetupRouter(ctrl, logger)
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info().Str("port", port).Msg("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
