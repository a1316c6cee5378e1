package models

import (
	"time"
)

type PortfolioItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `json:"image_url"` // cover image, first upload of the batch
	CreatedAt   time.Time `json:"created_at"`

	// One portfolio item owns many images; they cannot outlive it.
	Images []PortfolioImage `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"images"`
}

type PortfolioImage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ImageURL    string `gorm:"size:255;not null" json:"image_url"`
	PortfolioID uint   `gorm:"not null;index" json:"portfolio_id"`
}
