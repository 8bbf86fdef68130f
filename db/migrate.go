package db

import (
	"fmt"
	"log"

	"github.com/SyntalysTech/glow-aesthetic-web-sub000/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Service{},
		&models.Product{},
		&models.Booking{},
		&models.BookingItem{},
		&models.Review{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
