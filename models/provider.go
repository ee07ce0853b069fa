package models

import (
	"gorm.io/gorm"
)

// ServiceProvider owns a roster of staff technicians who carry out doorstep
// visits. Providers are onboarded by admins, either directly or by
// approving a partner request.
type ServiceProvider struct {
	gorm.Model
	Name              string  `json:"name"`
	Email             string  `json:"email" gorm:"unique"`
	Phone             string  `json:"phone"`
	Rating            float64 `json:"rating"`
	ServicesCompleted int     `json:"services_completed"`
	IsActive          bool    `json:"is_active" gorm:"default:true"`
	Staff             []Staff `json:"staff,omitempty" gorm:"foreignKey:ProviderID"`
}

// Staff is a technician on a provider's roster. The availability flag is
// informational; assignment does not check it or the technician's load.
type Staff struct {
	gorm.Model
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	ProviderID  uint   `json:"provider_id" gorm:"index"`
	IsAvailable bool   `json:"is_available" gorm:"default:true"`
}
