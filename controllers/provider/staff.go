package provider

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// providerForUser resolves the provider record for the logged-in provider
// account by email.
func providerForUser(c *fiber.Ctx) (*models.ServiceProvider, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	var provider models.ServiceProvider
	if err := db.DB.Preload("Staff").Where("email = ?", user.Email).First(&provider).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "No provider profile for this account")
	}
	return &provider, nil
}

// GetStaff lists the provider's roster.
func GetStaff(c *fiber.Ctx) error {
	provider, err := providerForUser(c)
	if err != nil {
		return err
	}
	return c.JSON(provider.Staff)
}

// AddStaff adds a technician to the provider's roster.
func AddStaff(c *fiber.Ctx) error {
	provider, err := providerForUser(c)
	if err != nil {
		return err
	}

	staff := new(models.Staff)
	if err := c.BodyParser(staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if staff.Name == "" || staff.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and phone are required",
		})
	}

	staff.ProviderID = provider.ID
	staff.IsAvailable = true
	if err := db.DB.Create(staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add staff member",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(staff)
}

// ToggleStaffAvailability flips a technician's availability flag. The flag
// is informational; it does not block assignment.
func ToggleStaffAvailability(c *fiber.Ctx) error {
	provider, err := providerForUser(c)
	if err != nil {
		return err
	}

	var staff models.Staff
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), provider.ID).First(&staff).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}

	staff.IsAvailable = !staff.IsAvailable
	if err := db.DB.Save(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update staff member",
			Error:   err.Error(),
		})
	}

	return c.JSON(staff)
}
