package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/cyclelife/doorstep-backend/cron"
	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/redis"
	"github.com/cyclelife/doorstep-backend/routes"
)

func main() {
	app := fiber.New()
	db.Migrate()
	db.Seed()
	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("CycleLife doorstep service API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupProviderRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
