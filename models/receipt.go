package models

import (
	"time"
)

// Receipt records a completed, paid booking. Exactly one receipt exists per
// booking; generation is guarded by the booking's receipt_id.
type Receipt struct {
	ID            string        `json:"id" gorm:"primaryKey"` // e.g. REC-9f3a2b1c
	BookingID     uint          `json:"booking_id" gorm:"uniqueIndex"`
	CustomerName  string        `json:"customer_name"`
	ServiceName   string        `json:"service_name"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// NewReceipt derives a receipt from a booking whose payment was just
// marked received.
func NewReceipt(id string, b *Booking) Receipt {
	now := time.Now()
	return Receipt{
		ID:            id,
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		ServiceName:   b.PackageName,
		Amount:        b.PaymentAmount,
		Date:          now,
		PaymentStatus: PaymentReceived,
		GeneratedAt:   now,
	}
}
