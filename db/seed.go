package db

import (
	"log"

	"gorm.io/datatypes"

	"github.com/cyclelife/doorstep-backend/models"
)

// Seed loads the reference data the platform needs to operate: the four
// roles, the service catalog and the founding provider with its roster.
// Existing rows are left untouched so the seed is safe to re-run.
func Seed() {
	seedRoles()
	seedPackages()
	seedProviders()
	log.Println("✅ Seed data applied successfully!")
}

func seedRoles() {
	roles := []models.Role{
		{Name: models.RoleCustomer, Description: "Customer who books doorstep services"},
		{Name: models.RoleProvider, Description: "Service provider who manages staff and payments"},
		{Name: models.RoleStaff, Description: "Technician who performs doorstep visits"},
		{Name: models.RoleAdmin, Description: "Platform administrator"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}
}

func seedProviders() {
	provider := models.ServiceProvider{
		Name:              "CycleCare Services",
		Email:             "serviceprovider@cyclelife.in",
		Phone:             "+91 77380 84657",
		Rating:            4.8,
		ServicesCompleted: 5000,
		IsActive:          true,
		Staff: []models.Staff{
			{Name: "Raj Kumar", Phone: "+91 77380 84657", IsAvailable: true},
			{Name: "Amit Sharma", Phone: "+91 77380 84657", IsAvailable: true},
			{Name: "Priya Patel", Phone: "+91 77380 84657", IsAvailable: true},
		},
	}
	var existing models.ServiceProvider
	if DB.Where("email = ?", provider.Email).First(&existing).RowsAffected == 0 {
		DB.Create(&provider)
	}
}

func seedPackages() {
	for _, pkg := range CatalogPackages() {
		var existing models.ServicePackage
		if DB.Where("id = ?", pkg.ID).First(&existing).RowsAffected == 0 {
			DB.Create(&pkg)
		}
	}
}

// CatalogPackages returns the nine-package service catalog. Assembly
// packages carry no annual plan, so their annual price equals the single
// price; Standard and Advanced annual plans are priced as two of three
// services.
func CatalogPackages() []models.ServicePackage {
	return []models.ServicePackage{
		{
			ID:           "assembly-nongeared",
			Name:         "Cycle Assembly - Non Geared",
			Description:  "Expert assembly for single-speed bikes",
			Price:        500,
			AnnualPrice:  500,
			Duration:     "1 hour",
			CycleType:    models.CycleNonGeared,
			ServiceLevel: models.LevelAssembly,
			Features: datatypes.JSONSlice[string]{
				"Complete bicycle assembly from box",
				"Wheel installation and alignment",
				"Handlebar and stem installation",
				"Brake installation and adjustment",
				"Pedal installation",
				"Seat and seat post installation",
				"Chain lubrication",
				"Safety check and test ride",
				"Disposal of packaging materials",
				"30-day assembly warranty",
			},
		},
		{
			ID:           "assembly-geared",
			Name:         "Cycle Assembly - Geared",
			Description:  "Professional assembly for geared bikes",
			Price:        750,
			AnnualPrice:  750,
			Duration:     "1.5 hours",
			CycleType:    models.CycleGeared,
			ServiceLevel: models.LevelAssembly,
			Features: datatypes.JSONSlice[string]{
				"Complete bicycle assembly from box",
				"Wheel installation and truing",
				"Handlebar and stem installation",
				"Brake installation and adjustment",
				"Gear system installation and tuning",
				"Derailleur adjustment and indexing",
				"Pedal installation",
				"Seat and seat post installation",
				"Chain lubrication",
				"Safety check and test ride",
				"Disposal of packaging materials",
				"30-day assembly warranty",
			},
		},
		{
			ID:           "assembly-road",
			Name:         "Cycle Assembly - Road",
			Description:  "Premium assembly for road bikes",
			Price:        1000,
			AnnualPrice:  1000,
			Duration:     "2 hours",
			CycleType:    models.CycleRoad,
			ServiceLevel: models.LevelAssembly,
			Features: datatypes.JSONSlice[string]{
				"Complete bicycle assembly from box",
				"Precision wheel installation and truing",
				"Handlebar and stem installation with cable routing",
				"Brake installation and fine adjustment",
				"Gear system installation and precision tuning",
				"Derailleur hanger alignment and indexing",
				"Pedal installation with torque specification",
				"Seat and seat post installation",
				"Chain lubrication and tension adjustment",
				"Comprehensive safety check",
				"Performance test ride",
				"Disposal of packaging materials",
				"30-day assembly warranty",
			},
		},
		{
			ID:           "standard-nongeared",
			Name:         "Standard Service - Non Geared",
			Description:  "Essential maintenance for your single-speed bike",
			Price:        799,
			AnnualPrice:  1598,
			Duration:     "1-2 hours",
			CycleType:    models.CycleNonGeared,
			ServiceLevel: models.LevelStandard,
			Features: datatypes.JSONSlice[string]{
				"Inspection for wear and tear",
				"Check and adjust Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Check and adjust brakes",
				"Chain cleaning and lubrication",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Wipe clean the bicycle",
				"Test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
		{
			ID:           "standard-geared",
			Name:         "Standard Service - Geared",
			Description:  "Essential maintenance including gear adjustments",
			Price:        1099,
			AnnualPrice:  2198,
			Duration:     "2-3 hours",
			CycleType:    models.CycleGeared,
			ServiceLevel: models.LevelStandard,
			Features: datatypes.JSONSlice[string]{
				"Inspection for wear and tear",
				"Check and adjust Fork, Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Check and adjust brakes",
				"Gear and Drivetrain tuning and adjustment",
				"Lubrication of Gear System",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Wipe clean the bicycle",
				"Test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
		{
			ID:           "standard-road",
			Name:         "Standard Service - Road",
			Description:  "Precision adjustments for optimal road performance",
			Price:        1299,
			AnnualPrice:  2598,
			Duration:     "2-3 hours",
			CycleType:    models.CycleRoad,
			ServiceLevel: models.LevelStandard,
			Features: datatypes.JSONSlice[string]{
				"Inspection for wear and tear",
				"Check and adjust Fork, Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Check and adjust brakes",
				"Gear and Drivetrain tuning and adjustment",
				"Lubrication of Gear System",
				"Derailleur hanger alignment check",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Wipe clean the bicycle",
				"Test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
		{
			ID:           "advanced-nongeared",
			Name:         "Advanced Service - Non Geared",
			Description:  "Comprehensive maintenance for optimal performance",
			Price:        999,
			AnnualPrice:  1998,
			Duration:     "2-3 hours",
			CycleType:    models.CycleNonGeared,
			ServiceLevel: models.LevelAdvanced,
			Features: datatypes.JSONSlice[string]{
				"Inspection for entire bicycle",
				"Check and adjust Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Brakes checked, adjusted and cleaned",
				"Chain cleaning and lubrication",
				"Greasing of all the components",
				"Lubrication of Brake System",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Wheel truing if required (Wheel Bend/ Broken Wheel repair not covered)",
				"Complete cleaning of Bicycle",
				"Test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
		{
			ID:           "advanced-geared",
			Name:         "Advanced Service - Geared",
			Description:  "Comprehensive service for smooth gear operation",
			Price:        1399,
			AnnualPrice:  2798,
			Duration:     "3-4 hours",
			CycleType:    models.CycleGeared,
			ServiceLevel: models.LevelAdvanced,
			Features: datatypes.JSONSlice[string]{
				"Inspection for entire bicycle",
				"Check and adjust Fork, Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Brakes checked, adjusted and cleaned",
				"Gear and Drivetrain tuning and adjustment",
				"Greasing of all the components",
				"Degrease the drivetrain",
				"Lubrication of Gear System",
				"Lubrication of Brake System",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Wheel truing if required (Wheel Bend/ Broken Wheel repair not covered)",
				"Complete cleaning of Bicycle",
				"Test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
		{
			ID:           "advanced-road",
			Name:         "Advanced Service - Road",
			Description:  "Competition-grade service for serious cyclists",
			Price:        1699,
			AnnualPrice:  3398,
			Duration:     "3-5 hours",
			CycleType:    models.CycleRoad,
			ServiceLevel: models.LevelAdvanced,
			Features: datatypes.JSONSlice[string]{
				"Inspection for entire bicycle",
				"Check and adjust Fork, Wheels, Hubs, Bottom Bracket, Headset and Stem",
				"Checking and Tightening all screws and bolts",
				"Bearings check (chargeable if bearings need to be replaced)",
				"Brakes checked, adjusted and cleaned",
				"Gear and Drivetrain tuning and adjustment",
				"Greasing of all the components",
				"Degrease the drivetrain",
				"Lubrication of Gear System",
				"Lubrication of Brake System",
				"Derailleur hanger alignment and precision adjustment",
				"Fixing Puncture (If any) and inflating the tires to accurate pressure",
				"Precision wheel truing and spoke tension adjustment",
				"Complete cleaning and detailing of Bicycle",
				"Performance optimization and test ride by service engineer",
				"*Any spares consumed will be additional",
			},
		},
	}
}
