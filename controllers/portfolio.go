// controllers/portfolio.go
package controllers

import (
	"errors"
	"net/http"

	"radam-backend/config"
	"radam-backend/models"
	"radam-backend/serializers"
	"radam-backend/services"
	"radam-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPortfolioItems lists all portfolio items with their image galleries.
func GetPortfolioItems(c *gin.Context) {
	var items []models.PortfolioItem
	if err := config.DB.Preload("Images").Find(&items).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve portfolio")
		return
	}

	c.JSON(http.StatusOK, serializers.PortfolioItems(items))
}

// GetPortfolioItem retrieves a specific portfolio item by ID
func GetPortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.PortfolioItem
	if err := config.DB.Preload("Images").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, serializers.PortfolioItem(item))
}

// CreatePortfolioItem creates an item from a multipart form. Title and
// description are required, as is at least one image. The whole batch is
// uploaded first; the first upload becomes the cover and every upload
// (the first included) is stored as an image row in the same transaction
// as the item.
func CreatePortfolioItem(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if missing := utils.MissingFields(
		utils.Field{Name: "title", Value: title},
		utils.Field{Name: "description", Value: description},
	); len(missing) > 0 {
		utils.RespondWithValidationError(c, missing)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "At least one image is required")
		return
	}

	uploaded, err := Uploader.UploadAll(c.Request.Context(), files, portfolioImageFolder)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	item := models.PortfolioItem{
		Title:       title,
		Description: description,
		ImageURL:    uploaded[0].SecureURL,
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		for _, img := range uploaded {
			image := models.PortfolioImage{ImageURL: img.SecureURL, PortfolioID: item.ID}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			item.Images = append(item.Images, image)
		}
		return nil
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create portfolio item")
		return
	}

	c.JSON(http.StatusCreated, serializers.PortfolioItem(item))
}

// UpdatePortfolioItem applies a partial update. Supplying images discards
// the previous gallery entirely and replaces it with the new uploads,
// moving the cover to the new first upload.
func UpdatePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.PortfolioItem
	if err := config.DB.Preload("Images").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if title, ok := c.GetPostForm("title"); ok {
		if title == "" {
			utils.RespondWithValidationError(c, []string{"title"})
			return
		}
		item.Title = title
	}
	if description, ok := c.GetPostForm("description"); ok {
		if description == "" {
			utils.RespondWithValidationError(c, []string{"description"})
			return
		}
		item.Description = description
	}

	var uploaded []services.UploadResult
	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["images"]; len(files) > 0 {
			uploaded, err = Uploader.UploadAll(c.Request.Context(), files, portfolioImageFolder)
			if err != nil {
				utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
				return
			}
		}
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(uploaded) > 0 {
			// delete-then-replace, not merge
			if err := tx.Where("portfolio_id = ?", item.ID).Delete(&models.PortfolioImage{}).Error; err != nil {
				return err
			}
			item.Images = nil
			item.ImageURL = uploaded[0].SecureURL
			for _, img := range uploaded {
				image := models.PortfolioImage{ImageURL: img.SecureURL, PortfolioID: item.ID}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
				item.Images = append(item.Images, image)
			}
		}
		return tx.Omit("Images").Save(&item).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update portfolio item")
		return
	}

	c.JSON(http.StatusOK, serializers.PortfolioItem(item))
}

// DeletePortfolioItem removes an item and its images in one transaction.
func DeletePortfolioItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var item models.PortfolioItem
	if err := config.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Portfolio item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", item.ID).Delete(&models.PortfolioImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete portfolio item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
}
