package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/controllers/customer"
	"github.com/cyclelife/doorstep-backend/middleware"
	"github.com/cyclelife/doorstep-backend/models"
)

// SetupCustomerRoutes configures all customer related routes
func SetupCustomerRoutes(app *fiber.App) {
	group := app.Group("/customer", middleware.Protected(), middleware.RequireRole(models.RoleCustomer))
	group.Post("/bookings", customer.CreateBooking)
	group.Get("/bookings", customer.GetMyBookings)
	group.Patch("/bookings/:id/reschedule", customer.RescheduleBooking)
	group.Patch("/bookings/:id/cancel", customer.CancelBooking)
	group.Post("/bookings/:id/feedback", customer.SubmitFeedback)
	group.Get("/receipts", customer.GetMyReceipts)
}
