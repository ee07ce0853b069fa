package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/controllers/provider"
	"github.com/cyclelife/doorstep-backend/middleware"
	"github.com/cyclelife/doorstep-backend/models"
)

// SetupProviderRoutes configures all provider related routes
func SetupProviderRoutes(app *fiber.App) {
	group := app.Group("/provider", middleware.Protected(), middleware.RequireRole(models.RoleProvider, models.RoleAdmin))
	group.Get("/dashboard", provider.GetDashboard)
	group.Get("/bookings", provider.GetAllBookings)
	group.Patch("/bookings/:id/assign", provider.AssignStaff)
	group.Patch("/bookings/:id/payment", provider.MarkPaymentReceived)
	group.Get("/receipts", provider.GetReceipts)
	group.Get("/staff", provider.GetStaff)
	group.Post("/staff", provider.AddStaff)
	group.Patch("/staff/:id/availability", provider.ToggleStaffAvailability)
}
