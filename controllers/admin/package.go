package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
	"github.com/cyclelife/doorstep-backend/utils"
)

// UpdatePackagePrices edits the single and annual price of a catalog
// package. Everything else about a package is fixed reference data.
func UpdatePackagePrices(c *fiber.Ctx) error {
	type PriceInput struct {
		Price       float64 `json:"price"`
		AnnualPrice float64 `json:"annual_price"`
	}
	input := new(PriceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.Price <= 0 || input.AnnualPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please enter both prices",
		})
	}

	var pkg models.ServicePackage
	if err := db.DB.First(&pkg, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Package not found",
			Error:   err.Error(),
		})
	}

	pkg.Price = input.Price
	pkg.AnnualPrice = input.AnnualPrice
	if err := db.DB.Save(&pkg).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update package prices",
			Error:   err.Error(),
		})
	}

	return c.JSON(pkg)
}
