package customer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cyclelife/doorstep-backend/db"
	"github.com/cyclelife/doorstep-backend/models"
)

func setupBookingTest(t *testing.T) (*fiber.App, models.User) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.Role{}, &models.User{}, &models.ServicePackage{},
		&models.Booking{}, &models.OTPLog{}, &models.Receipt{},
	))
	db.DB = gdb

	user := models.User{Name: "John Doe", Email: "john@example.com", Phone: "9876543210"}
	require.NoError(t, gdb.Create(&user).Error)

	for _, pkg := range []models.ServicePackage{
		{
			ID: "standard-geared", Name: "Standard Service - Geared",
			Price: 1099, AnnualPrice: 2999,
			CycleType: models.CycleGeared, ServiceLevel: models.LevelStandard,
		},
		{
			ID: "assembly-geared", Name: "Cycle Assembly - Geared",
			Price: 599, AnnualPrice: 599,
			CycleType: models.CycleGeared, ServiceLevel: models.LevelAssembly,
		},
	} {
		require.NoError(t, gdb.Create(&pkg).Error)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", user.ID)
		c.Locals("role", "customer")
		return c.Next()
	})
	app.Post("/bookings", CreateBooking)
	app.Get("/bookings", GetMyBookings)
	app.Patch("/bookings/:id/reschedule", RescheduleBooking)
	app.Patch("/bookings/:id/cancel", CancelBooking)
	app.Post("/bookings/:id/feedback", SubmitFeedback)

	return app, user
}

func postJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateBooking_SingleService(t *testing.T) {
	app, user := setupBookingTest(t)

	resp := postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "standard-geared",
		Date:      "2026-09-10",
		TimeSlot:  "10:00 AM - 11:00 AM",
		Address:   "42 Park Street",
		Phone:     "9876543210",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var bookings []models.Booking
	require.NoError(t, db.DB.Where("customer_id = ?", user.ID).Find(&bookings).Error)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.Equal(t, float64(1099), b.PaymentAmount)
	assert.False(t, b.IsAnnualPackage)
	assert.Len(t, b.StartOTP, 6)
	assert.Len(t, b.CompletionOTP, 6)
	assert.NotEqual(t, b.StartOTP, b.CompletionOTP)
}

func TestCreateBooking_AnnualSplitsIntoThreeVisits(t *testing.T) {
	app, user := setupBookingTest(t)

	resp := postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "standard-geared",
		Date:      "2026-09-10",
		TimeSlot:  "2:00 PM - 3:00 PM",
		Address:   "42 Park Street",
		Phone:     "9876543210",
		IsAnnual:  true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var bookings []models.Booking
	require.NoError(t, db.DB.Where("customer_id = ?", user.ID).Order("service_number").Find(&bookings).Error)
	require.Len(t, bookings, 3)

	base := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	for i, b := range bookings {
		assert.True(t, b.IsAnnualPackage)
		assert.Equal(t, bookings[0].AnnualPackageID, b.AnnualPackageID)
		assert.Equal(t, i+1, b.ServiceNumber)
		assert.Truef(t, base.AddDate(0, 4*i, 0).Equal(b.Date), "visit %d scheduled at %s", i+1, b.Date)
	}

	// The plan is billed once, against the first visit; later visits
	// carry no charge of their own.
	assert.Equal(t, models.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, float64(2999), bookings[0].PaymentAmount)
	assert.Equal(t, models.StatusPending, bookings[1].Status)
	assert.Zero(t, bookings[1].PaymentAmount)
	assert.Equal(t, models.StatusPending, bookings[2].Status)
	assert.Zero(t, bookings[2].PaymentAmount)
}

func TestCreateBooking_AssemblyHasNoAnnualPlan(t *testing.T) {
	app, _ := setupBookingTest(t)

	resp := postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "assembly-geared",
		Date:      "2026-09-10",
		TimeSlot:  "2:00 PM - 3:00 PM",
		Address:   "42 Park Street",
		Phone:     "9876543210",
		IsAnnual:  true,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateBooking_RejectsBadInput(t *testing.T) {
	app, _ := setupBookingTest(t)

	// Missing address.
	resp := postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "standard-geared",
		Date:      "2026-09-10",
		TimeSlot:  "2:00 PM - 3:00 PM",
		Phone:     "9876543210",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Slot not in the fixed list.
	resp = postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "standard-geared",
		Date:      "2026-09-10",
		TimeSlot:  "9:00 AM - 10:00 AM",
		Address:   "42 Park Street",
		Phone:     "9876543210",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown package.
	resp = postJSON(t, app, "POST", "/bookings", BookingInput{
		PackageID: "no-such-package",
		Date:      "2026-09-10",
		TimeSlot:  "2:00 PM - 3:00 PM",
		Address:   "42 Park Street",
		Phone:     "9876543210",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRescheduleBooking_LockedOnceInProgress(t *testing.T) {
	app, user := setupBookingTest(t)

	booking := models.Booking{
		CustomerID: user.ID,
		PackageID:  "standard-geared",
		Date:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00 AM - 11:00 AM",
		Status:     models.StatusInProgress,
	}
	require.NoError(t, db.DB.Create(&booking).Error)

	resp := postJSON(t, app, "PATCH", "/bookings/1/reschedule", fiber.Map{
		"date":      "2026-09-12",
		"time_slot": "3:00 PM - 4:00 PM",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRescheduleBooking_MovesConfirmedVisit(t *testing.T) {
	app, user := setupBookingTest(t)

	booking := models.Booking{
		CustomerID: user.ID,
		PackageID:  "standard-geared",
		Date:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:   "10:00 AM - 11:00 AM",
		Status:     models.StatusConfirmed,
	}
	require.NoError(t, db.DB.Create(&booking).Error)

	resp := postJSON(t, app, "PATCH", "/bookings/1/reschedule", fiber.Map{
		"date":      "2026-09-12",
		"time_slot": "3:00 PM - 4:00 PM",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Booking
	require.NoError(t, db.DB.First(&updated, booking.ID).Error)
	assert.Equal(t, "3:00 PM - 4:00 PM", updated.TimeSlot)
	assert.True(t, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC).Equal(updated.Date))
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestCancelBooking_TerminalStatesStay(t *testing.T) {
	app, user := setupBookingTest(t)

	completed := models.Booking{
		CustomerID: user.ID,
		PackageID:  "standard-geared",
		Status:     models.StatusCompleted,
	}
	require.NoError(t, db.DB.Create(&completed).Error)

	resp := postJSON(t, app, "PATCH", "/bookings/1/cancel", fiber.Map{})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged models.Booking
	require.NoError(t, db.DB.First(&unchanged, completed.ID).Error)
	assert.Equal(t, models.StatusCompleted, unchanged.Status)
}

func TestSubmitFeedback_OncePerCompletedBooking(t *testing.T) {
	app, user := setupBookingTest(t)

	booking := models.Booking{
		CustomerID: user.ID,
		PackageID:  "standard-geared",
		Status:     models.StatusCompleted,
	}
	require.NoError(t, db.DB.Create(&booking).Error)

	resp := postJSON(t, app, "POST", "/bookings/1/feedback", fiber.Map{
		"rating":  5,
		"comment": "Great service!",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Booking
	require.NoError(t, db.DB.First(&updated, booking.ID).Error)
	require.NotNil(t, updated.FeedbackRating)
	assert.Equal(t, 5, *updated.FeedbackRating)
	assert.Equal(t, "Great service!", updated.FeedbackComment)

	// Second attempt is rejected.
	resp = postJSON(t, app, "POST", "/bookings/1/feedback", fiber.Map{
		"rating": 1,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var after models.Booking
	require.NoError(t, db.DB.First(&after, booking.ID).Error)
	assert.Equal(t, 5, *after.FeedbackRating)
}

func TestSubmitFeedback_RequiresCompletion(t *testing.T) {
	app, user := setupBookingTest(t)

	booking := models.Booking{
		CustomerID: user.ID,
		PackageID:  "standard-geared",
		Status:     models.StatusConfirmed,
	}
	require.NoError(t, db.DB.Create(&booking).Error)

	resp := postJSON(t, app, "POST", "/bookings/1/feedback", fiber.Map{"rating": 4})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = postJSON(t, app, "POST", "/bookings/1/feedback", fiber.Map{"rating": 0})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
