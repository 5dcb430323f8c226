package project

import "github.com/BruksfildServices01/renovation-marketplace/internal/models"

// IsParticipant reports whether the user owns the project or is assigned to it.
func IsParticipant(p *models.Project, userID string) bool {
	if p.ClientID == userID {
		return true
	}
	return p.ProID != nil && *p.ProID == userID
}

func IsAssignedPro(p *models.Project, userID string) bool {
	return p.ProID != nil && *p.ProID == userID
}
