// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"radam-backend/config"
	"radam-backend/models"
	"radam-backend/serializers"
	"radam-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateBookingInput is the public booking submission payload.
type CreateBookingInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	ServiceID *uint  `json:"service_id"`
}

// UpdateBookingInput carries the admin status transition.
type UpdateBookingInput struct {
	Status string `json:"status"`
}

// GetBookings lists all bookings.
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	c.JSON(http.StatusOK, serializers.Bookings(bookings))
}

// GetBooking retrieves a specific booking by ID
func GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.Booking(booking))
}

// CreateBooking accepts a public booking request. Name, phone and email
// are required; when a service is referenced it must exist.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if missing := utils.MissingFields(
		utils.Field{Name: "name", Value: input.Name},
		utils.Field{Name: "phone", Value: input.Phone},
		utils.Field{Name: "email", Value: input.Email},
	); len(missing) > 0 {
		utils.RespondWithValidationError(c, missing)
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.First(&service, *input.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Service not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
	}

	booking := models.Booking{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Message:   input.Message,
		Status:    models.BookingStatusPending,
		ServiceID: input.ServiceID,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&booking).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, serializers.Booking(booking))
}

// UpdateBooking lets an admin move a booking through its status
// enumeration. Only pending -> confirmed is a legal transition.
func UpdateBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != "" {
		if !models.ValidStatusTransition(booking.Status, input.Status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status transition")
			return
		}
		booking.Status = input.Status
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&booking).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, serializers.Booking(booking))
}

// DeleteBooking removes a booking.
func DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Booking{}, id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
