// utils/respond.go
package utils

import (
	"github.com/gin-gonic/gin"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithValidationError lists the offending fields alongside the message.
func RespondWithValidationError(c *gin.Context, fields []string) {
	c.JSON(400, gin.H{"error": "Missing required fields", "fields": fields})
}
