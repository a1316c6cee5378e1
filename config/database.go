package config

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var DB *gorm.DB

// ConnectDB opens the database from DB_URL. A postgres:// DSN gets the
// postgres driver; anything else is treated as a sqlite path so local
// development runs without a server.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		dsn = "radam.db"
	}

	db, err := Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	DB = db
}

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	// cgo-free sqlite driver, used for local development and tests
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
