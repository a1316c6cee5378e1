package models

import (
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Nullable: a booking may be a general inquiry not tied to a service.
	ServiceID *uint `gorm:"index" json:"service_id"`
}

// ValidStatusTransition reports whether a booking may move from one status
// to another. Only pending -> confirmed is a real transition; setting the
// same status again is a no-op and allowed.
func ValidStatusTransition(from, to string) bool {
	if from == to {
		return to == BookingStatusPending || to == BookingStatusConfirmed
	}
	return from == BookingStatusPending && to == BookingStatusConfirmed
}
