package staff

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/redis"
	"github.com/cyclelife/doorstep-backend/utils"
)

// staffForUser resolves the roster entry for the logged-in technician.
// Staff records carry no account reference, so the match runs on the
// profile's phone number. Names are not matched: two people can share one.
func staffForUser(c *fiber.Ctx) (*models.Staff, *models.User, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	var staff models.Staff
	if err := db.DB.Where("phone = ?", user.Phone).First(&staff).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "No technician profile for this account")
	}
	return &staff, &user, nil
}

// GetAssignedBookings lists the technician's upcoming and in-progress
// visits from today onward.
func GetAssignedBookings(c *fiber.Ctx) error {
	staff, _, err := staffForUser(c)
	if err != nil {
		return err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var bookings []models.Booking
	if err := db.DB.Preload("Package").
		Where("assigned_staff_id = ?", staff.ID).
		Where("date >= ?", dayStart).
		Order("date asc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// VerifyOTP advances a booking through its OTP-gated stages: the start
// code moves a confirmed booking to in-progress, the completion code moves
// an in-progress booking to completed. Any other combination of status and
// code is rejected without touching the booking.
func VerifyOTP(c *fiber.Ctx) error {
	staff, user, err := staffForUser(c)
	if err != nil {
		return err
	}

	type VerifyInput struct {
		Type models.OTPType `json:"type"` // "start" or "completion"
		OTP  string         `json:"otp"`
	}
	input := new(VerifyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Type != models.OTPTypeStart && input.Type != models.OTPTypeCompletion {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Type must be start or completion",
		})
	}
	if input.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please enter the code from the customer",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("id = ? AND assigned_staff_id = ?", c.Params("id"), staff.ID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found or not assigned to you",
			Error:   err.Error(),
		})
	}

	if !redis.RegisterOTPAttempt(booking.ID) {
		return c.Status(fiber.StatusTooManyRequests).JSON(utils.ErrorResponse{
			Message: "Too many attempts, try again later",
		})
	}

	// VerifyOTP manages its own transaction: a failed attempt must keep its
	// audit log entry, so the call cannot run inside one that rolls back.
	err = booking.VerifyOTP(db.DB, input.Type, input.OTP, user.Name)
	switch {
	case errors.Is(err, models.ErrOTPNotRequired):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: fmt.Sprintf("Booking is %s, no %s code expected", booking.Status, input.Type),
		})
	case errors.Is(err, models.ErrInvalidOTP):
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid OTP. Please check the code from customer.",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to verify OTP",
			Error:   err.Error(),
		})
	}

	redis.ClearOTPAttempts(booking.ID)
	notifyStageChange(&booking)

	return c.JSON(booking)
}

func notifyStageChange(booking *models.Booking) {
	var customer models.User
	if err := db.DB.First(&customer, booking.CustomerID).Error; err != nil {
		log.Printf("Failed to load customer %d for stage mail: %v", booking.CustomerID, err)
		return
	}

	verb := "started"
	if booking.Status == models.StatusCompleted {
		verb = "completed"
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your service <strong>%s</strong> has been %s by %s.</p>
		<p>Best regards,</p>
		<p>Your CycleLife Team</p>
	`, customer.Name, booking.PackageName, verb, booking.AssignedStaffName)

	if err := utils.SendEmail(customer.Email, "Service "+verb, body); err != nil {
		log.Printf("Failed to send stage mail to %s: %v", customer.Email, err)
	}
}
