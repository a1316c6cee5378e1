// Package seed loads development fixtures: an admin account, sample
// services, portfolio items with galleries, and a few bookings.
package seed

import (
	"log"

	"radam-backend/models"

	"gorm.io/gorm"
)

// Run drops and recreates all tables, then inserts the fixtures.
// Destructive: development use only.
func Run(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Service{},
		&models.PortfolioItem{},
		&models.PortfolioImage{},
		&models.Booking{},
		&models.Contact{},
	}

	log.Println("Dropping all tables...")
	if err := db.Migrator().DropTable(tables...); err != nil {
		return err
	}
	log.Println("Creating all tables...")
	if err := db.AutoMigrate(tables...); err != nil {
		return err
	}

	admin := models.User{Username: "admin", Email: "admin@radam.com"}
	if err := admin.SetPassword("admin123"); err != nil {
		return err
	}
	demo := models.User{Username: "john_doe", Email: "john@example.com"}
	if err := demo.SetPassword("password"); err != nil {
		return err
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	if err := db.Create(&demo).Error; err != nil {
		return err
	}

	price1, price2, price3 := 500000.0, 20000.0, 30000.0
	construction := models.Service{
		Name:        "House Construction",
		Description: "Complete house construction from foundation to finishing.",
		Price:       &price1,
		ImageURL:    "https://images.unsplash.com/photo-1612935089040-89195ef54677",
	}
	plumbing := models.Service{
		Name:        "Plumbing",
		Description: "Professional plumbing services.",
		Price:       &price2,
		ImageURL:    "https://images.unsplash.com/photo-1562159937-194305937c6a",
	}
	electrical := models.Service{
		Name:        "Electrical Installation",
		Description: "Certified electrical wiring and installation.",
		Price:       &price3,
		ImageURL:    "https://images.unsplash.com/photo-1621905251918-48416bd8575a",
	}
	for _, s := range []*models.Service{&construction, &plumbing, &electrical} {
		if err := db.Create(s).Error; err != nil {
			return err
		}
	}

	villa := models.PortfolioItem{
		Title:       "Modern Villa",
		Description: "A modern villa built with premium materials.",
		ImageURL:    "https://images.unsplash.com/photo-1612935089040-89195ef54677",
		Images: []models.PortfolioImage{
			{ImageURL: "https://images.unsplash.com/photo-1593623671668-2964bc9bde85"},
			{ImageURL: "https://images.unsplash.com/photo-1667923006173-9e0d2251f608"},
		},
	}
	offices := models.PortfolioItem{
		Title:       "Office Complex",
		Description: "High-rise office building.",
		ImageURL:    "https://plus.unsplash.com/premium_photo-1661963657305-f52dcaeef418",
		Images: []models.PortfolioImage{
			{ImageURL: "https://images.unsplash.com/photo-1580063665421-4c9cbe9ec11b"},
			{ImageURL: "https://plus.unsplash.com/premium_photo-1683140804492-ae54cf3eec81"},
		},
	}
	for _, p := range []*models.PortfolioItem{&villa, &offices} {
		if err := db.Create(p).Error; err != nil {
			return err
		}
	}

	bookings := []models.Booking{
		{
			Name:      "Jane Doe",
			Phone:     "0712345678",
			Email:     "jane@example.com",
			Message:   "I'd like a quotation for a new home.",
			Status:    models.BookingStatusPending,
			ServiceID: &construction.ID,
		},
		{
			Name:      "Peter Parker",
			Phone:     "0798765432",
			Email:     "peter@example.com",
			Message:   "Need help with plumbing.",
			Status:    models.BookingStatusConfirmed,
			ServiceID: &plumbing.ID,
		},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			return err
		}
	}

	contact := models.Contact{
		Name:    "Mary Major",
		Email:   "mary@example.com",
		Phone:   "0700112233",
		Subject: "Renovation quote",
		Message: "Looking for a quote on a kitchen renovation.",
	}
	return db.Create(&contact).Error
}
