package models

import (
	"math"
	"time"

	"gorm.io/gorm"

	"gorm.io/datatypes"
)

// DiscountCampaign is a time-boxed percentage discount applied to eligible
// one-time packages at display time. It never mutates the stored package
// price; the discounted price is recomputed on every read.
type DiscountCampaign struct {
	gorm.Model
	Name               string                      `json:"name"`
	PackageIDs         datatypes.JSONSlice[string] `json:"package_ids"`
	DiscountPercentage float64                     `json:"discount_percentage"`
	StartDate          time.Time                   `json:"start_date"`
	EndDate            time.Time                   `json:"end_date"`
	IsActive           bool                        `json:"is_active"`
}

// ActiveOn reports whether the campaign window covers the given instant.
func (c *DiscountCampaign) ActiveOn(t time.Time) bool {
	return c.IsActive && !t.Before(c.StartDate) && !t.After(c.EndDate)
}

// Covers reports whether the package is part of the campaign.
func (c *DiscountCampaign) Covers(packageID string) bool {
	for _, id := range c.PackageIDs {
		if id == packageID {
			return true
		}
	}
	return false
}

// DiscountedPrice applies the campaign percentage to a list price.
func (c *DiscountCampaign) DiscountedPrice(price float64) float64 {
	return math.Round(price * (1 - c.DiscountPercentage/100))
}

// EffectivePrice returns the display price of a package as of the given
// time. The first active campaign covering the package wins; overlapping
// campaigns are not merged. Without a matching campaign the list price is
// returned unchanged.
func EffectivePrice(pkg *ServicePackage, campaigns []DiscountCampaign, asOf time.Time) float64 {
	for i := range campaigns {
		c := &campaigns[i]
		if c.ActiveOn(asOf) && c.Covers(pkg.ID) {
			return c.DiscountedPrice(pkg.Price)
		}
	}
	return pkg.Price
}
