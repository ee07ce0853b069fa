package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// GenerateOTP returns a random 6-digit code. Every booking gets two of
// these at creation time, one per service stage.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

// GenerateAnnualPackageID returns the shared id linking the three visits
// of an annual purchase.
func GenerateAnnualPackageID() string {
	return "annual-" + uuid.NewString()
}

// GenerateReceiptID returns a receipt number like REC-9f3a2b1c.
func GenerateReceiptID() string {
	return "REC-" + uuid.NewString()[:8]
}
