package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
)

// GetPlatformStats aggregates the numbers shown on the admin overview:
// bookings by status, collected revenue, feedback average and headcounts.
func GetPlatformStats(c *fiber.Ctx) error {
	statusCounts := fiber.Map{}
	for _, status := range []models.BookingStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusCancelled,
	} {
		var count int64
		db.DB.Model(&models.Booking{}).Where("status = ?", status).Count(&count)
		statusCounts[string(status)] = count
	}

	var revenue struct {
		Total float64
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(SUM(payment_amount), 0) as total").
		Where("payment_status = ?", models.PaymentReceived).
		Scan(&revenue)

	var rating struct {
		Avg   float64
		Total int64
	}
	db.DB.Model(&models.Booking{}).
		Select("COALESCE(AVG(feedback_rating), 0) as avg, COUNT(feedback_rating) as total").
		Where("feedback_rating IS NOT NULL").
		Scan(&rating)

	var customers, providers, technicians int64
	db.DB.Model(&models.User{}).
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleCustomer).
		Count(&customers)
	db.DB.Model(&models.ServiceProvider{}).Count(&providers)
	db.DB.Model(&models.Staff{}).Count(&technicians)

	return c.JSON(fiber.Map{
		"bookings_by_status": statusCounts,
		"collected_revenue":  revenue.Total,
		"average_rating":     rating.Avg,
		"total_reviews":      rating.Total,
		"total_customers":    customers,
		"total_providers":    providers,
		"total_technicians":  technicians,
	})
}
