package models

import (
	"time"

	"gorm.io/datatypes"
)

type CycleType string

const (
	CycleNonGeared CycleType = "Non Geared"
	CycleGeared    CycleType = "Geared"
	CycleRoad      CycleType = "Road"
)

type ServiceLevel string

const (
	LevelAssembly ServiceLevel = "Assembly"
	LevelStandard ServiceLevel = "Standard"
	LevelAdvanced ServiceLevel = "Advanced"
)

// ServicePackage is a purchasable service tier scoped to a cycle type.
// Packages are reference data seeded at startup; only the prices are
// editable (by admins).
type ServicePackage struct {
	ID           string                      `json:"id" gorm:"primaryKey"`
	Name         string                      `json:"name"`
	Description  string                      `json:"description"`
	Price        float64                     `json:"price"`
	AnnualPrice  float64                     `json:"annual_price"`
	Duration     string                      `json:"duration"` // e.g. "2-3 hours"
	Features     datatypes.JSONSlice[string] `json:"features"`
	CycleType    CycleType                   `json:"cycle_type"`
	ServiceLevel ServiceLevel                `json:"service_level"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// HasAnnualPlan reports whether the package can be bought as an annual
// bundle of three visits. Assembly is a one-off job, so its annual price
// equals the single price and no bundle is offered.
func (p *ServicePackage) HasAnnualPlan() bool {
	return p.ServiceLevel != LevelAssembly
}
