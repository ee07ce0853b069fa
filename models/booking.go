package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
)

type OTPType string

const (
	OTPTypeStart      OTPType = "start"
	OTPTypeCompletion OTPType = "completion"
)

// OTPValidity is recorded on every log entry. The window is informational:
// codes are single-use because the status advances past the stage that
// required them, so no wall-clock check is performed on entry.
const OTPValidity = 15 * time.Minute

// Annual packages bundle three visits spaced four months apart.
const (
	AnnualServiceCount    = 3
	AnnualServiceGapMonth = 4
)

var (
	ErrInvalidOTP     = errors.New("invalid OTP")
	ErrOTPNotRequired = errors.New("no OTP required for current booking status")
)

// TimeSlots is the fixed set of bookable one-hour windows.
var TimeSlots = []string{
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
	"6:00 PM - 7:00 PM",
	"7:00 PM - 8:00 PM",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// OTPLog is an append-only audit entry attached to a booking. Both
// successful and failed verification attempts are recorded.
type OTPLog struct {
	gorm.Model
	BookingID uint      `json:"booking_id" gorm:"index"`
	Timestamp time.Time `json:"timestamp"`
	Type      OTPType   `json:"type"`
	OTP       string    `json:"otp"`
	EnteredBy string    `json:"entered_by"`
	IsValid   bool      `json:"is_valid"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Booking is one scheduled doorstep service visit, possibly one of three
// linked to an annual purchase. Bookings are never deleted; cancellation
// is a status value.
type Booking struct {
	gorm.Model
	CustomerID   uint           `json:"customer_id"`
	Customer     User           `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName string         `json:"customer_name"`
	PackageID    string         `json:"package_id"`
	Package      ServicePackage `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	PackageName  string         `json:"package_name"`
	Date         time.Time      `json:"date"`
	TimeSlot     string         `json:"time_slot"`
	Status       BookingStatus  `json:"status"`
	Address      string         `json:"address"`
	Phone        string         `json:"phone"`

	AssignedStaffID   *uint  `json:"assigned_staff_id"`
	AssignedStaffName string `json:"assigned_staff_name,omitempty"`

	FeedbackRating  *int   `json:"feedback_rating,omitempty"`
	FeedbackComment string `json:"feedback_comment,omitempty"`

	IsAnnualPackage bool   `json:"is_annual_package"`
	AnnualPackageID string `json:"annual_package_id,omitempty" gorm:"index"`
	ServiceNumber   int    `json:"service_number,omitempty"` // 1, 2 or 3 for annual packages

	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	PaymentAmount float64       `json:"payment_amount,omitempty"`
	ReceiptID     string        `json:"receipt_id,omitempty"`

	StartOTP      string   `json:"start_otp,omitempty"`
	CompletionOTP string   `json:"completion_otp,omitempty"`
	OTPLogs       []OTPLog `json:"otp_logs,omitempty" gorm:"foreignKey:BookingID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// Terminal reports whether no further transitions are allowed.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether a booking may move from one status to
// another. Transitions are monotonic along
// pending -> confirmed -> in-progress -> completed, with cancellation
// reachable from any non-terminal state.
func CanTransition(from, to BookingStatus) bool {
	if to == StatusCancelled {
		return !from.Terminal()
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed
	case StatusConfirmed:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	}
	return false
}

// UpdateStatus applies a status transition and persists it.
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	if !CanTransition(b.Status, newStatus) {
		return fmt.Errorf("invalid transition from %s to %s", b.Status, newStatus)
	}
	b.Status = newStatus
	return tx.Save(b).Error
}

// RequiredOTPType returns which of the two codes the booking currently
// expects: the start code while confirmed, the completion code while
// in progress. Any other status expects none.
func (b *Booking) RequiredOTPType() (OTPType, bool) {
	switch b.Status {
	case StatusConfirmed:
		return OTPTypeStart, true
	case StatusInProgress:
		return OTPTypeCompletion, true
	}
	return "", false
}

// ExpectedOTP returns the stored code for the given stage.
func (b *Booking) ExpectedOTP(otpType OTPType) string {
	if otpType == OTPTypeStart {
		return b.StartOTP
	}
	return b.CompletionOTP
}

// VerifyOTP checks the entered code against the code the booking currently
// requires and advances the status on success. Every attempt is appended to
// the booking's audit log: a failed attempt persists its log entry even
// though the status does not move, so the log must not be written inside a
// transaction that rolls back on the mismatch. The status advance and its
// log entry commit atomically. A mismatch, or a code offered while the
// booking is in a status that expects none, leaves the status unchanged.
func (b *Booking) VerifyOTP(db *gorm.DB, otpType OTPType, code, enteredBy string) error {
	required, ok := b.RequiredOTPType()
	if !ok || required != otpType {
		return ErrOTPNotRequired
	}

	now := time.Now()
	entry := OTPLog{
		BookingID: b.ID,
		Timestamp: now,
		Type:      otpType,
		OTP:       code,
		EnteredBy: enteredBy,
		IsValid:   code == b.ExpectedOTP(otpType),
		ExpiresAt: now.Add(OTPValidity),
	}
	if !entry.IsValid {
		if err := db.Create(&entry).Error; err != nil {
			return err
		}
		return ErrInvalidOTP
	}

	next := StatusInProgress
	if otpType == OTPTypeCompletion {
		next = StatusCompleted
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return b.UpdateStatus(tx, next)
	})
}
