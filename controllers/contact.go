// controllers/contact.go
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

// CreateContactInput is the public contact-form payload.
type CreateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// GetContacts lists contact messages, newest first. Admin-only.
func GetContacts(c *gin.Context) {
	var contacts []models.Contact
	if err := config.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
		return
	}

	c.JSON(http.StatusOK, serializers.Contacts(contacts))
}

// GetContact retrieves a specific contact message by ID
func GetContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var contact models.Contact
	if err := config.DB.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.Contact(contact))
}

// CreateContact accepts a public contact-form submission.
func CreateContact(c *gin.Context) {
	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if missing := utils.MissingFields(
		utils.Field{Name: "name", Value: input.Name},
		utils.Field{Name: "email", Value: input.Email},
		utils.Field{Name: "subject", Value: input.Subject},
		utils.Field{Name: "message", Value: input.Message},
	); len(missing) > 0 {
		utils.RespondWithValidationError(c, missing)
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&contact).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, serializers.Contact(contact))
}

// DeleteContact removes a contact message. Admin-only.
func DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
