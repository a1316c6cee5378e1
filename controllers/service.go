// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"radam-backend/config"
	"radam-backend/models"
	"radam-backend/serializers"
	"radam-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetServices lists all services. Nested bookings are narrowed to the
// requester's own; anonymous callers see none.
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Preload("Bookings").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	email := utils.RequesterEmail(c)
	out := serializers.Services(services)
	for i := range out {
		out[i] = serializers.FilterBookingsByEmail(out[i], email)
	}

	c.JSON(http.StatusOK, out)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.Preload("Bookings").First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	out := serializers.FilterBookingsByEmail(serializers.Service(service), utils.RequesterEmail(c))
	c.JSON(http.StatusOK, out)
}

// CreateService creates a service from a multipart form: name is required,
// at least one image is required, description and price are optional.
// Images are uploaded before the transaction opens so a failed upload
// never leaves a service row behind.
func CreateService(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := c.PostForm("name")
	if missing := utils.MissingFields(utils.Field{Name: "name", Value: name}); len(missing) > 0 {
		utils.RespondWithValidationError(c, missing)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one image is required")
		return
	}

	var price *float64
	if raw, ok := c.GetPostForm("price"); ok && raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be a non-negative number")
			return
		}
		price = &parsed
	}

	uploaded, err := Uploader.UploadAll(c.Request.Context(), files, serviceImageFolder)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	service := models.Service{
		Name:        name,
		Description: c.PostForm("description"),
		Price:       price,
		ImageURL:    uploaded[0].SecureURL,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&service).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, serializers.Service(service))
}

// UpdateService applies a partial update: only form fields present in the
// request change; new images replace the cover with the first upload.
func UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if name, ok := c.GetPostForm("name"); ok {
		if name == "" {
			utils.RespondWithValidationError(c, []string{"name"})
			return
		}
		service.Name = name
	}
	if description, ok := c.GetPostForm("description"); ok {
		service.Description = description
	}
	if raw, ok := c.GetPostForm("price"); ok && raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be a non-negative number")
			return
		}
		service.Price = &parsed
	}

	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["images"]; len(files) > 0 {
			uploaded, err := Uploader.UploadAll(c.Request.Context(), files, serviceImageFolder)
			if err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
				return
			}
			service.ImageURL = uploaded[0].SecureURL
		}
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&service).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, serializers.Service(service))
}

// DeleteService removes a service and every booking that references it,
// in one transaction.
func DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
