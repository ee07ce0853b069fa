package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// GetProviders lists every service provider with its roster.
func GetProviders(c *fiber.Ctx) error {
	var providers []models.ServiceProvider
	if err := db.DB.Preload("Staff").Order("id").Find(&providers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch providers",
			Error:   err.Error(),
		})
	}
	return c.JSON(providers)
}

// OnboardProvider creates a provider directly, bypassing the partner
// request flow.
func OnboardProvider(c *fiber.Ctx) error {
	provider := new(models.ServiceProvider)
	if err := c.BodyParser(provider); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if provider.Name == "" || provider.Email == "" || provider.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name, email and phone are required",
		})
	}

	provider.IsActive = true
	if err := db.DB.Create(provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to onboard provider",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(provider)
}

// ToggleProviderStatus activates or deactivates a provider.
func ToggleProviderStatus(c *fiber.Ctx) error {
	var provider models.ServiceProvider
	if err := db.DB.First(&provider, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Provider not found",
			Error:   err.Error(),
		})
	}

	provider.IsActive = !provider.IsActive
	if err := db.DB.Save(&provider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update provider",
			Error:   err.Error(),
		})
	}

	return c.JSON(provider)
}
