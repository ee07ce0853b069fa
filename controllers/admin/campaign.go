package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// CampaignInput is the campaign-creation payload.
type CampaignInput struct {
	Name               string   `json:"name"`
	PackageIDs         []string `json:"package_ids"`
	DiscountPercentage float64  `json:"discount_percentage"`
	StartDate          string   `json:"start_date"` // "2006-01-02"
	EndDate            string   `json:"end_date"`
}

// CreateCampaign sets up a timed discount for one-time service packages.
// Assembly packages are not eligible: they have no annual variant and the
// discount overlay only ever targets the one-time price of serviceable
// tiers.
func CreateCampaign(c *fiber.Ctx) error {
	input := new(CampaignInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name == "" || input.StartDate == "" || input.EndDate == "" || len(input.PackageIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please fill all campaign details",
		})
	}
	// A zero-percent campaign would leave every price unchanged, so the
	// lower bound is exclusive.
	if input.DiscountPercentage <= 0 || input.DiscountPercentage > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Discount percentage must be above 0 and at most 100",
		})
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	endDate, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid end date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}
	if endDate.Before(startDate) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "End date must not be before start date",
		})
	}

	// Eligibility check: every listed package must exist and be a
	// non-Assembly tier.
	for _, id := range input.PackageIDs {
		var pkg models.ServicePackage
		if err := db.DB.First(&pkg, "id = ?", id).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Package not found: " + id,
			})
		}
		if pkg.ServiceLevel == models.LevelAssembly {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Assembly packages are not eligible for campaigns: " + id,
			})
		}
	}

	campaign := models.DiscountCampaign{
		Name:               input.Name,
		PackageIDs:         datatypes.JSONSlice[string](input.PackageIDs),
		DiscountPercentage: input.DiscountPercentage,
		StartDate:          startDate,
		EndDate:            endDate,
		IsActive:           true,
	}
	if err := db.DB.Create(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create campaign",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// GetCampaigns lists all discount campaigns.
func GetCampaigns(c *fiber.Ctx) error {
	var campaigns []models.DiscountCampaign
	if err := db.DB.Order("id").Find(&campaigns).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch campaigns",
			Error:   err.Error(),
		})
	}
	return c.JSON(campaigns)
}

// ToggleCampaign flips a campaign's active flag.
func ToggleCampaign(c *fiber.Ctx) error {
	var campaign models.DiscountCampaign
	if err := db.DB.First(&campaign, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Campaign not found",
			Error:   err.Error(),
		})
	}

	campaign.IsActive = !campaign.IsActive
	if err := db.DB.Save(&campaign).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update campaign",
			Error:   err.Error(),
		})
	}

	return c.JSON(campaign)
}
