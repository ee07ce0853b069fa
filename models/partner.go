package models

import (
	"time"

	"gorm.io/gorm"
)

type PartnerRequestStatus string

const (
	PartnerPending  PartnerRequestStatus = "pending"
	PartnerApproved PartnerRequestStatus = "approved"
	PartnerRejected PartnerRequestStatus = "rejected"
)

// PartnerRequest is an application to join the platform as a service
// provider. Approval synthesizes a provider record from the request.
type PartnerRequest struct {
	gorm.Model
	Name         string               `json:"name"`
	Contact      string               `json:"contact"`
	Email        string               `json:"email"`
	Location     string               `json:"location"`
	BusinessName string               `json:"business_name,omitempty"`
	Experience   string               `json:"experience,omitempty"`
	SubmittedAt  time.Time            `json:"submitted_at"`
	Status       PartnerRequestStatus `json:"status"`
}

func (r *PartnerRequest) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = PartnerPending
	}
	if r.SubmittedAt.IsZero() {
		r.SubmittedAt = time.Now()
	}
	return nil
}

// ToProvider builds the provider record onboarded when the request is
// approved. The business name wins over the applicant's name when present.
func (r *PartnerRequest) ToProvider() ServiceProvider {
	name := r.BusinessName
	if name == "" {
		name = r.Name
	}
	return ServiceProvider{
		Name:     name,
		Email:    r.Email,
		Phone:    r.Contact,
		IsActive: true,
	}
}
