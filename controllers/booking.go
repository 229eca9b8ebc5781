// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"barberbook-backend/models"
	"barberbook-backend/services"
	"barberbook-backend/utils"
)

// CreateBookingInput defines the expected JSON structure for a booking
// request. Time is deliberately unbound here: the booking service owns the
// required-slot check and its message.
type CreateBookingInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time"`
}

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

// CreateBooking books a slot for the customer
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	booking, err := bc.Service.Add(services.BookingInput{
		Name:    input.Name,
		Phone:   input.Phone,
		Service: input.Service,
		Date:    input.Date,
		Time:    input.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTimeRequired):
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrSlotTaken):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save booking")
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// SlotAvailability pairs a slot label with its booked state for one date.
type SlotAvailability struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// GetAvailability reports every slot for a date so the form can disable
// the taken ones. Date defaults to today, matching the form's default.
func (bc *BookingController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = utils.Today()
	}
	if !utils.ValidateDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	bookedTimes, err := bc.Service.BookedTimes(date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := make([]SlotAvailability, 0, len(models.TimeSlots))
	for _, t := range models.TimeSlots {
		slots = append(slots, SlotAvailability{Time: t, Booked: booked[t]})
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GetBookings returns all bookings for the admin view, newest first.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt > bookings[j].CreatedAt
	})

	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking by id. Deleting an unknown id succeeds;
// the admin client confirms with the operator before calling this.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	if err := bc.Service.Delete(id); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
