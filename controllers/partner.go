package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// SubmitPartnerRequest accepts a public application to join as a service
// provider. Review happens on the admin dashboard.
func SubmitPartnerRequest(c *fiber.Ctx) error {
	request := new(models.PartnerRequest)
	if err := c.BodyParser(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if request.Name == "" || request.Contact == "" || request.Email == "" || request.Location == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name, contact, email and location are required",
		})
	}

	request.Status = models.PartnerPending
	if err := db.DB.Create(request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to submit partner request",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}
