package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/controllers/staff"
	"github.com/cyclelife/doorstep-backend/middleware"
	"github.com/cyclelife/doorstep-backend/models"
)

// SetupStaffRoutes configures all technician related routes
func SetupStaffRoutes(app *fiber.App) {
	group := app.Group("/staff", middleware.Protected(), middleware.RequireRole(models.RoleStaff))
	group.Get("/bookings", staff.GetAssignedBookings)
	group.Post("/bookings/:id/verify-otp", staff.VerifyOTP)
}
