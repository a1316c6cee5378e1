package models

import (
	"time"
)

type Service struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       *float64  `gorm:"type:decimal(10,2)" json:"price"`
	ImageURL    string    `json:"image_url"` // cover image, distinct from any gallery
	CreatedAt   time.Time `json:"created_at"`

	// Deleting a service deletes its bookings (composition).
	Bookings []Booking `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"bookings"`
}
