package provider

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
)

// GetDashboard returns the provider's operational summary: today's open
// visits, completions, pending payments and collected revenue.
func GetDashboard(c *fiber.Ctx) error {
	provider, err := providerForUser(c)
	if err != nil {
		return err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var todayOpen int64
	db.DB.Model(&models.Booking{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Where("status IN ?", []models.BookingStatus{models.StatusConfirmed, models.StatusInProgress}).
		Count(&todayOpen)

	var completedToday int64
	db.DB.Model(&models.Booking{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Where("status = ?", models.StatusCompleted).
		Count(&completedToday)

	var pendingPayments int64
	db.DB.Model(&models.Booking{}).
		Where("status = ? AND payment_status = ?", models.StatusCompleted, models.PaymentPending).
		Count(&pendingPayments)

	var revenue struct {
		Total float64
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(payment_amount), 0) as total").
		Where("payment_status = ?", models.PaymentReceived).
		Scan(&revenue)

	var staffCount int64
	db.DB.Model(&models.Staff{}).Where("provider_id = ?", provider.ID).Count(&staffCount)

	return c.JSON(fiber.Map{
		"provider":          provider.Name,
		"today_open":        todayOpen,
		"completed_today":   completedToday,
		"pending_payments":  pendingPayments,
		"collected_revenue": revenue.Total,
		"staff_count":       staffCount,
	})
}
