package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/controllers/admin"
	"github.com/cyclelife/doorstep-backend/middleware"
	"github.com/cyclelife/doorstep-backend/models"
)

// SetupAdminRoutes configures all admin related routes
func SetupAdminRoutes(app *fiber.App) {
	group := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	group.Get("/stats", admin.GetPlatformStats)

	group.Patch("/packages/:id/prices", admin.UpdatePackagePrices)

	group.Get("/campaigns", admin.GetCampaigns)
	group.Post("/campaigns", admin.CreateCampaign)
	group.Patch("/campaigns/:id/toggle", admin.ToggleCampaign)

	group.Get("/providers", admin.GetProviders)
	group.Post("/providers", admin.OnboardProvider)
	group.Patch("/providers/:id/toggle", admin.ToggleProviderStatus)

	group.Get("/partner-requests", admin.GetPartnerRequests)
	group.Patch("/partner-requests/:id/approve", admin.ApprovePartnerRequest)
	group.Patch("/partner-requests/:id/reject", admin.RejectPartnerRequest)
}
