package customer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// BookingInput is the booking-creation payload.
type BookingInput struct {
	PackageID string `json:"package_id"`
	Date      string `json:"date"` // "2006-01-02"
	TimeSlot  string `json:"time_slot"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	IsAnnual  bool   `json:"is_annual"`
}

// CreateBooking books a doorstep visit for the logged-in customer. An
// annual purchase creates three linked bookings spaced four months apart;
// only the first starts confirmed. Both stage OTPs are issued at creation
// and mailed to the customer.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(BookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.PackageID == "" || input.Date == "" || input.TimeSlot == "" || input.Address == "" || input.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please fill all booking details",
		})
	}
	if !models.IsValidTimeSlot(input.TimeSlot) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown time slot",
		})
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	var pkg models.ServicePackage
	if err := db.DB.First(&pkg, "id = ?", input.PackageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Package not found",
			Error:   err.Error(),
		})
	}

	if input.IsAnnual && !pkg.HasAnnualPlan() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Assembly packages have no annual plan",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
			Error:   err.Error(),
		})
	}

	var created []models.Booking
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if input.IsAnnual {
			annualID := utils.GenerateAnnualPackageID()
			for n := 1; n <= models.AnnualServiceCount; n++ {
				booking := models.Booking{
					CustomerID:      user.ID,
					CustomerName:    user.Name,
					PackageID:       pkg.ID,
					PackageName:     fmt.Sprintf("%s (Annual - Service %d/%d)", pkg.Name, n, models.AnnualServiceCount),
					Date:            utils.AddMonths(date, (n-1)*models.AnnualServiceGapMonth),
					TimeSlot:        input.TimeSlot,
					Status:          models.StatusPending,
					Address:         input.Address,
					Phone:           input.Phone,
					IsAnnualPackage: true,
					AnnualPackageID: annualID,
					ServiceNumber:   n,
					PaymentStatus:   models.PaymentPending,
					StartOTP:        utils.GenerateOTP(),
					CompletionOTP:   utils.GenerateOTP(),
				}
				if n == 1 {
					// The annual plan is billed once, against the first visit.
					booking.Status = models.StatusConfirmed
					booking.PaymentAmount = pkg.AnnualPrice
				}
				if err := tx.Create(&booking).Error; err != nil {
					return err
				}
				created = append(created, booking)
			}
			return nil
		}

		booking := models.Booking{
			CustomerID:    user.ID,
			CustomerName:  user.Name,
			PackageID:     pkg.ID,
			PackageName:   pkg.Name,
			Date:          date,
			TimeSlot:      input.TimeSlot,
			Status:        models.StatusConfirmed,
			Address:       input.Address,
			Phone:         input.Phone,
			PaymentStatus: models.PaymentPending,
			PaymentAmount: pkg.Price,
			StartOTP:      utils.GenerateOTP(),
			CompletionOTP: utils.GenerateOTP(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		created = append(created, booking)
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	sendBookingConfirmation(&user, &pkg, created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func sendBookingConfirmation(user *models.User, pkg *models.ServicePackage, bookings []models.Booking) {
	first := bookings[0]
	schedule := ""
	for _, b := range bookings {
		schedule += fmt.Sprintf("<li>%s, %s</li>", b.Date.Format("2006-01-02"), b.TimeSlot)
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Schedule:</strong><ul>%s</ul></li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Share the start code <strong>%s</strong> with the technician when the
		visit begins, and the completion code <strong>%s</strong> once the work is
		done to your satisfaction.</p>
		<p>Best regards,</p>
		<p>Your CycleLife Team</p>
	`, user.Name, pkg.Name, schedule, first.Address, first.StartOTP, first.CompletionOTP)

	if err := utils.SendEmail(user.Email, "Booking Confirmation", body); err != nil {
		log.Printf("Failed to send booking confirmation to %s: %v", user.Email, err)
	}
}

// GetMyBookings lists the customer's bookings, newest visit first.
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("Package").Preload("OTPLogs").
		Where("customer_id = ?", userID).
		Order("date desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// RescheduleBooking moves a pending or confirmed booking to a new date and
// slot. Later stages are locked because a technician may already be on the
// way.
func RescheduleBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type RescheduleInput struct {
		Date     string `json:"date"`
		TimeSlot string `json:"time_slot"`
	}
	input := new(RescheduleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Date == "" || input.TimeSlot == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please select new date and time",
		})
	}
	if !models.IsValidTimeSlot(input.TimeSlot) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown time slot",
		})
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	var booking models.Booking
	if err := db.DB.Where("id = ? AND customer_id = ?", c.Params("id"), userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if booking.Status != models.StatusPending && booking.Status != models.StatusConfirmed {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Only pending or confirmed bookings can be rescheduled",
		})
	}

	booking.Date = date
	booking.TimeSlot = input.TimeSlot
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to reschedule booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// CancelBooking marks a booking cancelled. Records are never deleted.
func CancelBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("id = ? AND customer_id = ?", c.Params("id"), userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if err := booking.UpdateStatus(db.DB, models.StatusCancelled); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Cannot cancel a completed or cancelled booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// SubmitFeedback attaches a one-time rating and comment to a completed
// booking.
func SubmitFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	type FeedbackInput struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	input := new(FeedbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Rating < 1 || input.Rating > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Rating must be between 1 and 5",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("id = ? AND customer_id = ?", c.Params("id"), userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if booking.Status != models.StatusCompleted {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Feedback can only be left on completed bookings",
		})
	}
	if booking.FeedbackRating != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Feedback already submitted for this booking",
		})
	}

	booking.FeedbackRating = &input.Rating
	booking.FeedbackComment = input.Comment
	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save feedback",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// GetMyReceipts lists receipts for the customer's paid bookings.
func GetMyReceipts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var receipts []models.Receipt
	if err := db.DB.
		Where("booking_id IN (?)", db.DB.Model(&models.Booking{}).Select("id").Where("customer_id = ?", userID)).
		Order("generated_at desc").
		Find(&receipts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch receipts",
			Error:   err.Error(),
		})
	}

	return c.JSON(receipts)
}
