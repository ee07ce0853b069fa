package utils

import "time"

// ToIST converts UTC time to Indian Standard Time (IST)
func ToIST(t time.Time) time.Time {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return t // Fallback to UTC if IST is not available
	}
	return t.In(ist)
}

// AddMonths shifts a date by whole months, matching the spacing rule for
// annual-package visits.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}
