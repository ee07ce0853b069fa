package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Booking{}, &OTPLog{}))
	return db
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusConfirmed, StatusInProgress, true},
		{StatusInProgress, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusPending, StatusInProgress, false},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestRequiredOTPType(t *testing.T) {
	b := Booking{Status: StatusConfirmed}
	typ, ok := b.RequiredOTPType()
	require.True(t, ok)
	assert.Equal(t, OTPTypeStart, typ)

	b.Status = StatusInProgress
	typ, ok = b.RequiredOTPType()
	require.True(t, ok)
	assert.Equal(t, OTPTypeCompletion, typ)

	for _, status := range []BookingStatus{StatusPending, StatusCompleted, StatusCancelled} {
		b.Status = status
		_, ok = b.RequiredOTPType()
		assert.Falsef(t, ok, "status %s should require no OTP", status)
	}
}

func TestVerifyOTP_AdvancesThroughStages(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{
		CustomerName:  "John Doe",
		PackageID:     "standard-geared",
		Status:        StatusConfirmed,
		StartOTP:      "111111",
		CompletionOTP: "222222",
	}
	require.NoError(t, db.Create(&booking).Error)

	require.NoError(t, booking.VerifyOTP(db, OTPTypeStart, "111111", "Raj Kumar"))
	assert.Equal(t, StatusInProgress, booking.Status)

	require.NoError(t, booking.VerifyOTP(db, OTPTypeCompletion, "222222", "Raj Kumar"))
	assert.Equal(t, StatusCompleted, booking.Status)

	var logs []OTPLog
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Order("id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, OTPTypeStart, logs[0].Type)
	assert.True(t, logs[0].IsValid)
	assert.Equal(t, "Raj Kumar", logs[0].EnteredBy)
	assert.Equal(t, OTPValidity, logs[0].ExpiresAt.Sub(logs[0].Timestamp))
	assert.Equal(t, OTPTypeCompletion, logs[1].Type)
	assert.True(t, logs[1].IsValid)
}

func TestVerifyOTP_RejectsWrongCode(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{
		Status:        StatusConfirmed,
		StartOTP:      "111111",
		CompletionOTP: "222222",
	}
	require.NoError(t, db.Create(&booking).Error)

	err := booking.VerifyOTP(db, OTPTypeStart, "999999", "Raj Kumar")
	assert.ErrorIs(t, err, ErrInvalidOTP)
	assert.Equal(t, StatusConfirmed, booking.Status)

	// Failed attempts still land in the audit trail.
	var logs []OTPLog
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.False(t, logs[0].IsValid)
	assert.Equal(t, "999999", logs[0].OTP)
}

func TestVerifyOTP_RejectsWrongStage(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{
		Status:        StatusConfirmed,
		StartOTP:      "111111",
		CompletionOTP: "222222",
	}
	require.NoError(t, db.Create(&booking).Error)

	// The completion code is worthless while the visit has not started,
	// even when it is the right code.
	err := booking.VerifyOTP(db, OTPTypeCompletion, "222222", "Raj Kumar")
	assert.ErrorIs(t, err, ErrOTPNotRequired)
	assert.Equal(t, StatusConfirmed, booking.Status)

	// Pending bookings expect no code at all.
	pending := Booking{Status: StatusPending, StartOTP: "111111"}
	require.NoError(t, db.Create(&pending).Error)
	err = pending.VerifyOTP(db, OTPTypeStart, "111111", "Raj Kumar")
	assert.ErrorIs(t, err, ErrOTPNotRequired)
	assert.Equal(t, StatusPending, pending.Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	db := newTestDB(t)

	booking := Booking{Status: StatusCompleted}
	require.NoError(t, db.Create(&booking).Error)

	err := booking.UpdateStatus(db, StatusCancelled)
	assert.Error(t, err)
	assert.Equal(t, StatusCompleted, booking.Status)
}

func TestIsValidTimeSlot(t *testing.T) {
	assert.True(t, IsValidTimeSlot("10:00 AM - 11:00 AM"))
	assert.True(t, IsValidTimeSlot("7:00 PM - 8:00 PM"))
	assert.False(t, IsValidTimeSlot("9:00 AM - 10:00 AM"))
	assert.False(t, IsValidTimeSlot(""))
}
