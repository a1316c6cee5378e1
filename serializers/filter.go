package serializers

import (
	"github.com/gin-gonic/gin"
)

// FilterBookingsByEmail narrows a serialized service's nested bookings to
// the requester's own. An anonymous caller (empty email) sees no bookings
// at all; an authenticated caller sees only bookings whose email matches
// exactly. Runs after serialization and never touches the entity.
func FilterBookingsByEmail(service gin.H, email string) gin.H {
	bookings, ok := service["bookings"].([]gin.H)
	if !ok {
		service["bookings"] = []gin.H{}
		return service
	}

	filtered := make([]gin.H, 0, len(bookings))
	if email != "" {
		for _, b := range bookings {
			if b["email"] == email {
				filtered = append(filtered, b)
			}
		}
	}
	service["bookings"] = filtered
	return service
}
