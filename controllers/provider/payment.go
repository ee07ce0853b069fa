package provider

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// MarkPaymentReceived records payment for a completed booking and
// generates its receipt. The booking's receipt id doubles as an
// idempotency guard: a second call is rejected instead of producing a
// second receipt.
func MarkPaymentReceived(c *fiber.Ctx) error {
	var booking models.Booking
	if err := db.DB.First(&booking, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}

	if booking.Status != models.StatusCompleted {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Payment can only be recorded for completed bookings",
		})
	}
	if booking.ReceiptID != "" {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Payment already recorded for this booking",
		})
	}

	receipt := models.NewReceipt(utils.GenerateReceiptID(), &booking)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}
		booking.PaymentStatus = models.PaymentReceived
		booking.ReceiptID = receipt.ID
		return tx.Save(&booking).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record payment",
			Error:   err.Error(),
		})
	}

	sendReceiptEmail(&booking, &receipt)

	return c.JSON(fiber.Map{
		"booking": booking,
		"receipt": receipt,
	})
}

func sendReceiptEmail(booking *models.Booking, receipt *models.Receipt) {
	var customer models.User
	if err := db.DB.First(&customer, booking.CustomerID).Error; err != nil {
		log.Printf("Failed to load customer %d for receipt mail: %v", booking.CustomerID, err)
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received your payment. Thank you!</p>
		<p><strong>Receipt %s</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Amount:</strong> ₹%.0f</li>
			<li><strong>Date:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>Your CycleLife Team</p>
	`, customer.Name, receipt.ID, receipt.ServiceName, receipt.Amount,
		utils.ToIST(receipt.Date).Format("2006-01-02 03:04 PM"))

	if err := utils.SendEmail(customer.Email, "Payment Receipt "+receipt.ID, body); err != nil {
		log.Printf("Failed to send receipt mail to %s: %v", customer.Email, err)
	}
}

// GetReceipts lists generated receipts, newest first.
func GetReceipts(c *fiber.Ctx) error {
	var receipts []models.Receipt
	if err := db.DB.Order("generated_at desc").Find(&receipts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch receipts",
			Error:   err.Error(),
		})
	}
	return c.JSON(receipts)
}
