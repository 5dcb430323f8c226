package project

import "github.com/BruksfildServices01/renovation-marketplace/internal/httperr"

// ===============================
// Project Status
// ===============================

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusPaused     Status = "paused"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusDone, StatusPaused:
		return true
	}
	return false
}

// ===============================
// Phase Status
// ===============================

type PhaseStatus string

const (
	PhaseDone       PhaseStatus = "done"
	PhaseInProgress PhaseStatus = "in_progress"
	PhasePending    PhaseStatus = "pending"
)

func (s PhaseStatus) Valid() bool {
	switch s {
	case PhaseDone, PhaseInProgress, PhasePending:
		return true
	}
	return false
}

// ===============================
// Cost Category
// ===============================

type CostCategory string

const (
	CostMaterials CostCategory = "materials"
	CostLabor     CostCategory = "labor"
	CostPermits   CostCategory = "permits"
	CostOther     CostCategory = "other"
)

// CostCategories is the fixed display order of the cost breakdown.
var CostCategories = []CostCategory{CostMaterials, CostLabor, CostPermits, CostOther}

func (c CostCategory) Valid() bool {
	switch c {
	case CostMaterials, CostLabor, CostPermits, CostOther:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return httperr.ErrBusiness("invalid_progress")
	}
	return nil
}

func ValidateMoney(amount float64) error {
	if amount < 0 {
		return httperr.ErrBusiness("invalid_amount")
	}
	return nil
}
