package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
)

func setupCatalogTest(t *testing.T) *fiber.App {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.ServicePackage{}, &models.DiscountCampaign{}, &models.PartnerRequest{},
	))
	db.DB = gdb

	for _, pkg := range []models.ServicePackage{
		{ID: "standard-geared", Name: "Standard Service - Geared", Price: 1099, AnnualPrice: 2999, ServiceLevel: models.LevelStandard},
		{ID: "basic-geared", Name: "Basic Service - Geared", Price: 899, AnnualPrice: 2299, ServiceLevel: models.LevelStandard},
	} {
		require.NoError(t, gdb.Create(&pkg).Error)
	}

	app := fiber.New()
	app.Get("/packages", GetAllPackages)
	app.Get("/packages/:id", GetPackage)
	app.Get("/time-slots", GetTimeSlots)
	app.Post("/partner-requests", SubmitPartnerRequest)

	return app
}

func TestGetAllPackages_AppliesActiveCampaign(t *testing.T) {
	app := setupCatalogTest(t)

	campaign := models.DiscountCampaign{
		Name:               "Monsoon Sale",
		PackageIDs:         datatypes.NewJSONSlice([]string{"standard-geared"}),
		DiscountPercentage: 20,
		StartDate:          time.Now().AddDate(0, 0, -1),
		EndDate:            time.Now().AddDate(0, 0, 7),
		IsActive:           true,
	}
	require.NoError(t, db.DB.Create(&campaign).Error)

	req := httptest.NewRequest("GET", "/packages", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var views []struct {
		ID             string  `json:"id"`
		Price          float64 `json:"price"`
		EffectivePrice float64 `json:"effective_price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&views))
	require.Len(t, views, 2)

	byID := map[string]float64{}
	for _, v := range views {
		byID[v.ID] = v.EffectivePrice
	}
	assert.Equal(t, float64(879), byID["standard-geared"])
	assert.Equal(t, float64(899), byID["basic-geared"])

	// The stored price is untouched.
	var stored models.ServicePackage
	require.NoError(t, db.DB.First(&stored, "id = ?", "standard-geared").Error)
	assert.Equal(t, float64(1099), stored.Price)
}

func TestGetPackage_ListPriceWithoutCampaign(t *testing.T) {
	app := setupCatalogTest(t)

	req := httptest.NewRequest("GET", "/packages/standard-geared", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var view struct {
		ID             string  `json:"id"`
		EffectivePrice float64 `json:"effective_price"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "standard-geared", view.ID)
	assert.Equal(t, float64(1099), view.EffectivePrice)

	req = httptest.NewRequest("GET", "/packages/no-such-package", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetTimeSlots(t *testing.T) {
	app := setupCatalogTest(t)

	req := httptest.NewRequest("GET", "/time-slots", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var slots []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&slots))
	assert.Len(t, slots, 10)
	assert.Equal(t, "10:00 AM - 11:00 AM", slots[0])
	assert.Equal(t, "7:00 PM - 8:00 PM", slots[len(slots)-1])
}

func TestSubmitPartnerRequest(t *testing.T) {
	app := setupCatalogTest(t)

	raw, err := json.Marshal(fiber.Map{
		"name":     "Suresh Mehta",
		"contact":  "9111111111",
		"email":    "suresh@speedcycles.com",
		"location": "Pune",
	})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/partner-requests", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.PartnerRequest
	require.NoError(t, db.DB.First(&saved).Error)
	assert.Equal(t, models.PartnerPending, saved.Status)
	assert.False(t, saved.SubmittedAt.IsZero())

	// Location is mandatory.
	raw, err = json.Marshal(fiber.Map{
		"name":    "Suresh Mehta",
		"contact": "9111111111",
		"email":   "suresh@speedcycles.com",
	})
	require.NoError(t, err)
	req = httptest.NewRequest("POST", "/partner-requests", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
