// controllers/catalog.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook-backend/models"
)

// The catalog is reference data compiled into the binary, so these
// handlers have no failure modes.

// GetServices lists the service menu shown on the booking form.
func GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, models.Services)
}

// GetGallery lists the gallery items for the site.
func GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, models.GalleryItems)
}

// GetContact returns the shop's contact card.
func GetContact(c *gin.Context) {
	c.JSON(http.StatusOK, models.Contact)
}

// GetTimeSlots returns the fixed, ordered slot labels.
func GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}
