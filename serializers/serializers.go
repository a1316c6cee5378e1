// Package serializers converts entities into transmittable maps. Each
// function is one (entity, context) projection: reverse edges that would
// re-embed the parent are omitted at the call site that declares them,
// and the user password hash is never emitted anywhere.
package serializers

import (
	"radam-backend/models"

	"github.com/gin-gonic/gin"
)

// Booking projects a booking without its service back-reference, the
// shape used when a booking is nested under a service or listed on its own.
func Booking(b models.Booking) gin.H {
	return gin.H{
		"id":         b.ID,
		"name":       b.Name,
		"phone":      b.Phone,
		"email":      b.Email,
		"message":    b.Message,
		"status":     b.Status,
		"service_id": b.ServiceID,
		"created_at": b.CreatedAt,
	}
}

func Bookings(bookings []models.Booking) []gin.H {
	out := make([]gin.H, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Booking(b))
	}
	return out
}

// Service projects a service with its bookings nested. The bookings never
// embed the service again, so the payload cannot cycle.
func Service(s models.Service) gin.H {
	return gin.H{
		"id":          s.ID,
		"name":        s.Name,
		"description": s.Description,
		"price":       s.Price,
		"image_url":   s.ImageURL,
		"created_at":  s.CreatedAt,
		"bookings":    Bookings(s.Bookings),
	}
}

func Services(services []models.Service) []gin.H {
	out := make([]gin.H, 0, len(services))
	for _, s := range services {
		out = append(out, Service(s))
	}
	return out
}

// PortfolioImage omits the owning item, the symmetric rule to bookings.
func PortfolioImage(img models.PortfolioImage) gin.H {
	return gin.H{
		"id":           img.ID,
		"image_url":    img.ImageURL,
		"portfolio_id": img.PortfolioID,
	}
}

func PortfolioItem(p models.PortfolioItem) gin.H {
	images := make([]gin.H, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, PortfolioImage(img))
	}
	return gin.H{
		"id":          p.ID,
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"created_at":  p.CreatedAt,
		"images":      images,
	}
}

func PortfolioItems(items []models.PortfolioItem) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, p := range items {
		out = append(out, PortfolioItem(p))
	}
	return out
}

func Contact(c models.Contact) gin.H {
	return gin.H{
		"id":         c.ID,
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"subject":    c.Subject,
		"message":    c.Message,
		"created_at": c.CreatedAt,
	}
}

func Contacts(contacts []models.Contact) []gin.H {
	out := make([]gin.H, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, Contact(c))
	}
	return out
}

// User never includes the password hash.
func User(u models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}
