package request

import (
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// ===============================
// Request Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

func InitialStatus() Status {
	return StatusPending
}

// Outcome maps the professional's answer to the terminal status.
func Outcome(accept bool) Status {
	if accept {
		return StatusAccepted
	}
	return StatusDeclined
}

// ===============================
// Validations
// ===============================

// CanRespond checks that proID may answer r for projectID.
func CanRespond(r *models.ProjectRequest, projectID, proID string) error {
	if r.ProjectID != projectID {
		return httperr.ErrBusiness("project_mismatch")
	}
	if r.ProID != proID {
		return httperr.ErrBusiness("forbidden")
	}
	if Status(r.Status) != StatusPending {
		return httperr.ErrBusiness("request_not_pending")
	}
	return nil
}
