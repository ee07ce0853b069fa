package provider

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// GetAllBookings lists every booking, optionally filtered by status.
func GetAllBookings(c *fiber.Ctx) error {
	query := db.DB.Preload("Package").Order("date asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// AssignStaff puts a technician on a booking. A booking holds at most one
// assignee; reassignment overwrites. Capacity is informational only, so no
// load check is made against the technician's other bookings.
func AssignStaff(c *fiber.Ctx) error {
	provider, err := providerForUser(c)
	if err != nil {
		return err
	}

	type AssignInput struct {
		StaffID uint `json:"staff_id"`
	}
	input := new(AssignInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var staff models.Staff
	if err := db.DB.Where("id = ? AND provider_id = ?", input.StaffID, provider.ID).First(&staff).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Staff member not found",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if booking.Status.Terminal() {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Cannot assign staff to a completed or cancelled booking",
		})
	}

	booking.AssignedStaffID = &staff.ID
	booking.AssignedStaffName = staff.Name
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign staff",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}
