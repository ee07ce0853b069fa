package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cyclelife/doorstep-backend/models"
)

func TestRoleFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"admin@cyclelife.com", models.RoleAdmin},
		{"ADMIN@CYCLELIFE.COM", models.RoleAdmin},
		{"provider@cyclecare.com", models.RoleProvider},
		{"staff.raj@cyclecare.com", models.RoleStaff},
		{"technician1@cyclecare.com", models.RoleStaff},
		{"john@example.com", models.RoleCustomer},
		{"", models.RoleCustomer},
		// admin wins over later matches when both substrings appear.
		{"admin-provider@cyclelife.com", models.RoleAdmin},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, RoleFromEmail(tt.email), "email %q", tt.email)
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp)
		}
	}
}

func TestGenerateAnnualPackageID(t *testing.T) {
	a := GenerateAnnualPackageID()
	b := GenerateAnnualPackageID()
	assert.Contains(t, a, "annual-")
	assert.NotEqual(t, a, b)
}

func TestGenerateReceiptID(t *testing.T) {
	id := GenerateReceiptID()
	assert.Len(t, id, len("REC-")+8)
	assert.Contains(t, id, "REC-")
}

func TestToIST(t *testing.T) {
	utc := time.Date(2026, 9, 10, 18, 30, 0, 0, time.UTC)
	ist := ToIST(utc)

	// IST is UTC+05:30, so 18:30 UTC is already the next day locally.
	_, offset := ist.Zone()
	assert.Equal(t, 5*3600+30*60, offset)
	assert.Equal(t, 11, ist.Day())
	assert.Equal(t, 0, ist.Hour())
	assert.True(t, utc.Equal(ist))
}

func TestAddMonths(t *testing.T) {
	base := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC), AddMonths(base, 4))
	assert.Equal(t, time.Date(2027, 5, 10, 0, 0, 0, 0, time.UTC), AddMonths(base, 8))
	assert.Equal(t, base, AddMonths(base, 0))
}
