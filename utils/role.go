package utils

import (
	"strings"

	"github.com/cyclelife/doorstep-backend/models"
)

// RoleFromEmail derives a default role from an email address when a signup
// carries no explicit role: a substring match on admin, provider and
// staff/technician, falling back to customer. The rule exists so the mobile
// and web clients can demo every dashboard without an invite flow; real
// role assignment is an explicit admin action.
func RoleFromEmail(email string) string {
	email = strings.ToLower(email)
	switch {
	case strings.Contains(email, "admin"):
		return models.RoleAdmin
	case strings.Contains(email, "provider"):
		return models.RoleProvider
	case strings.Contains(email, "staff"), strings.Contains(email, "technician"):
		return models.RoleStaff
	default:
		return models.RoleCustomer
	}
}
