package controllers

import (
	"net/http"
	"strconv"

	"radam-backend/services"
	"radam-backend/utils"

	"github.com/gin-gonic/gin"
)

// Uploader is the external image-hosting collaborator. main wires the
// Cloudinary client; tests swap in a stub.
var Uploader services.ImageUploader

const (
	serviceImageFolder   = "radam-construction/services"
	portfolioImageFolder = "radam-construction/portfolio"
)

// parseID reads the numeric id path parameter. On failure it has already
// written the error response.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
