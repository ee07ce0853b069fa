package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/controllers"
)

// SetupCatalogRoutes configures the public catalog and partner routes.
func SetupCatalogRoutes(app *fiber.App) {
	packages := app.Group("/packages")
	packages.Get("/", controllers.GetAllPackages)
	packages.Get("/:id", controllers.GetPackage)

	app.Get("/time-slots", controllers.GetTimeSlots)
	app.Post("/partner-requests", controllers.SubmitPartnerRequest)
}
