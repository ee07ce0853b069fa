package db

import (
	"fmt"
	"log"

	"github.com/cyclelife/doorstep-backend/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.ServicePackage{},
		&models.Booking{},
		&models.OTPLog{},
		&models.Receipt{},
		&models.DiscountCampaign{},
		&models.ServiceProvider{},
		&models.Staff{},
		&models.PartnerRequest{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
