package admin

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// GetPartnerRequests lists partner applications, pending first.
func GetPartnerRequests(c *fiber.Ctx) error {
	var requests []models.PartnerRequest
	if err := db.DB.Order("status desc, submitted_at asc").Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch partner requests",
			Error:   err.Error(),
		})
	}
	return c.JSON(requests)
}

// ApprovePartnerRequest onboards the applicant as an active service
// provider and marks the request approved.
func ApprovePartnerRequest(c *fiber.Ctx) error {
	var request models.PartnerRequest
	if err := db.DB.First(&request, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Partner request not found",
			Error:   err.Error(),
		})
	}

	if request.Status != models.PartnerPending {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Partner request already reviewed",
		})
	}

	provider := request.ToProvider()
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&provider).Error; err != nil {
			return err
		}
		request.Status = models.PartnerApproved
		return tx.Save(&request).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to approve partner request",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"request":  request,
		"provider": provider,
	})
}

// RejectPartnerRequest marks the application rejected.
func RejectPartnerRequest(c *fiber.Ctx) error {
	var request models.PartnerRequest
	if err := db.DB.First(&request, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Partner request not found",
			Error:   err.Error(),
		})
	}

	if request.Status != models.PartnerPending {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Partner request already reviewed",
		})
	}

	request.Status = models.PartnerRejected
	if err := db.DB.Save(&request).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reject partner request",
			Error:   err.Error(),
		})
	}

	return c.JSON(request)
}
