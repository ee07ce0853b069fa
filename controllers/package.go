package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// packageView is a catalog entry with the campaign overlay applied. The
// stored price is never mutated; the effective price is recomputed on
// every read against the active campaigns.
type packageView struct {
	models.ServicePackage
	EffectivePrice float64 `json:"effective_price"`
}

// GetAllPackages returns the service catalog with display prices.
func GetAllPackages(c *fiber.Ctx) error {
	var packages []models.ServicePackage
	if err := db.DB.Order("id").Find(&packages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch packages",
			Error:   err.Error(),
		})
	}

	var campaigns []models.DiscountCampaign
	if err := db.DB.Order("id").Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch campaigns",
			Error:   err.Error(),
		})
	}

	now := time.Now()
	views := make([]packageView, 0, len(packages))
	for _, pkg := range packages {
		views = append(views, packageView{
			ServicePackage: pkg,
			EffectivePrice: models.EffectivePrice(&pkg, campaigns, now),
		})
	}

	return c.JSON(views)
}

// GetPackage returns a single catalog entry with its display price.
func GetPackage(c *fiber.Ctx) error {
	id := c.Params("id")

	var pkg models.ServicePackage
	if err := db.DB.First(&pkg, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Package not found",
			Error:   err.Error(),
		})
	}

	var campaigns []models.DiscountCampaign
	if err := db.DB.Order("id").Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch campaigns",
			Error:   err.Error(),
		})
	}

	return c.JSON(packageView{
		ServicePackage: pkg,
		EffectivePrice: models.EffectivePrice(&pkg, campaigns, time.Now()),
	})
}

// GetTimeSlots returns the fixed bookable windows.
func GetTimeSlots(c *fiber.Ctx) error {
	return c.JSON(models.TimeSlots)
}
