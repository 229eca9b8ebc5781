// controllers/dashboard.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook-backend/services"
	"barberbook-backend/utils"
)

type DashboardController struct {
	Service *services.BookingService
}

func NewDashboardController(service *services.BookingService) *DashboardController {
	return &DashboardController{Service: service}
}

// GetDashboardOverview summarizes the booking book for the admin view.
// Dates are ISO strings, so string comparison orders them correctly.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	bookings, err := dc.Service.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	today := utils.Today()
	todayCount := 0
	upcomingCount := 0
	for _, b := range bookings {
		switch {
		case b.Date == today:
			todayCount++
		case b.Date > today:
			upcomingCount++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBookings":    len(bookings),
		"todayBookings":    todayCount,
		"upcomingBookings": upcomingCount,
	})
}
