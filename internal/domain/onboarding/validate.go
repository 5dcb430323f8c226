package onboarding

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MaxPortfolio = 10
	MaxBioRunes  = 1000

	StepCompany     = 1
	StepSpecialties = 2
	StepMedia       = 3
	StepBio         = 4
	LastStep        = StepBio
)

// Draft is the wizard state the professional submits, step by step or all
// at once.
type Draft struct {
	CompanyName     string   `json:"company_name"`
	FullName        string   `json:"full_name"`
	Phone           string   `json:"phone"`
	LicenseNumber   string   `json:"license_number"`
	YearsExperience int      `json:"years_experience"`
	ServiceArea     string   `json:"service_area"`
	HourlyRate      *float64 `json:"hourly_rate"`
	Specialties     []string `json:"specialties"`
	Bio             string   `json:"bio"`

	// PortfolioCount is the number of new images attached to the submission.
	PortfolioCount int `json:"portfolio_count"`
}

// ValidationError blocks advancing past a wizard step.
type ValidationError struct {
	Step  int    `json:"step"`
	Field string `json:"field"`
	Code  string `json:"code"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s: %s", e.Step, e.Field, e.Code)
}

func invalid(step int, field, code string) error {
	return &ValidationError{Step: step, Field: field, Code: code}
}

// ValidateStep checks the fields owned by one step.
func ValidateStep(step int, d Draft) error {
	switch step {
	case StepCompany:
		if strings.TrimSpace(d.CompanyName) == "" {
			return invalid(step, "company_name", "required")
		}
		if strings.TrimSpace(d.FullName) == "" {
			return invalid(step, "full_name", "required")
		}
		if d.YearsExperience < 0 {
			return invalid(step, "years_experience", "negative")
		}
		if d.HourlyRate != nil && *d.HourlyRate <= 0 {
			return invalid(step, "hourly_rate", "not_positive")
		}
	case StepSpecialties:
		if len(d.Specialties) == 0 {
			return invalid(step, "specialties", "required")
		}
		for _, s := range d.Specialties {
			if !Specialty(s).Valid() {
				return invalid(step, "specialties", "unknown_specialty")
			}
		}
	case StepMedia:
		// portfolio overflow is truncated at submission, not rejected
	case StepBio:
		if utf8.RuneCountInString(d.Bio) > MaxBioRunes {
			return invalid(step, "bio", "too_long")
		}
	default:
		return invalid(step, "step", "unknown_step")
	}
	return nil
}

// Validate runs every step in order and returns the first failure.
func Validate(d Draft) error {
	for step := StepCompany; step <= LastStep; step++ {
		if err := ValidateStep(step, d); err != nil {
			return err
		}
	}
	return nil
}

// NormalizeSpecialties trims values and collapses duplicates, keeping the
// first occurrence order.
func NormalizeSpecialties(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ClampPortfolio returns how many of the incoming images fit next to the
// stored ones, and how many are dropped.
func ClampPortfolio(stored, incoming int) (keep, dropped int) {
	room := MaxPortfolio - stored
	if room < 0 {
		room = 0
	}
	if incoming <= room {
		return incoming, 0
	}
	return room, incoming - room
}
