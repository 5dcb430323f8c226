package stats

import (
	"math"
	"sort"
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

const day = 24 * time.Hour

// BudgetUtilization is round(100 * spent / budget), 0 when there is no budget.
func BudgetUtilization(p models.Project) int {
	if p.Budget == 0 {
		return 0
	}
	return int(math.Round(100 * p.Spent / p.Budget))
}

// OverBudget marks the warning state shown when spending passes the budget.
func OverBudget(p models.Project) bool {
	return p.Spent > p.Budget
}

func CompletedPhases(phases []models.ProjectPhase) int {
	n := 0
	for _, ph := range phases {
		if project.PhaseStatus(ph.Status) == project.PhaseDone {
			n++
		}
	}
	return n
}

// DurationWeeks returns ceil((end - start) / 7 days). ok is false when either
// date is missing.
func DurationWeeks(p models.Project) (weeks int, ok bool) {
	if p.StartDate == nil || p.EstimatedEndDate == nil {
		return 0, false
	}
	d := p.EstimatedEndDate.Sub(*p.StartDate)
	return int(math.Ceil(d.Hours() / (7 * 24))), true
}

// DaysRemaining returns ceil((end - now) / 1 day). Overdue projects give a
// negative value.
func DaysRemaining(p models.Project, now time.Time) (days int, ok bool) {
	if p.EstimatedEndDate == nil {
		return 0, false
	}
	d := p.EstimatedEndDate.Sub(now)
	return int(math.Ceil(float64(d) / float64(day))), true
}

// CostsByCategory sums costs per category. All four categories are present.
func CostsByCategory(costs []models.ProjectCost) map[project.CostCategory]float64 {
	out := make(map[project.CostCategory]float64, len(project.CostCategories))
	for _, c := range project.CostCategories {
		out[c] = 0
	}
	for _, c := range costs {
		out[project.CostCategory(c.Category)] += c.Amount
	}
	return out
}

func TotalCosts(costs []models.ProjectCost) float64 {
	var total float64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}

// SortPhases returns a copy ordered by sort order, ties by creation time.
func SortPhases(phases []models.ProjectPhase) []models.ProjectPhase {
	out := make([]models.ProjectPhase, len(phases))
	copy(out, phases)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CurrentPhase is the first in-progress phase in display order.
func CurrentPhase(phases []models.ProjectPhase) (*models.ProjectPhase, bool) {
	for _, ph := range SortPhases(phases) {
		if project.PhaseStatus(ph.Status) == project.PhaseInProgress {
			ph := ph
			return &ph, true
		}
	}
	return nil, false
}

// Metrics is the derived block of the project details screen.
type Metrics struct {
	BudgetUtilization int                              `json:"budget_utilization"`
	OverBudget        bool                             `json:"over_budget"`
	CompletedPhases   int                              `json:"completed_phases"`
	TotalPhases       int                              `json:"total_phases"`
	DurationWeeks     *int                             `json:"duration_weeks"`
	DaysRemaining     *int                             `json:"days_remaining"`
	CostsByCategory   map[project.CostCategory]float64 `json:"costs_by_category"`
	TotalCosts        float64                          `json:"total_costs"`
	CurrentPhase      *models.ProjectPhase             `json:"current_phase"`
}

func ProjectMetrics(
	p models.Project,
	phases []models.ProjectPhase,
	costs []models.ProjectCost,
	now time.Time,
) Metrics {
	m := Metrics{
		BudgetUtilization: BudgetUtilization(p),
		OverBudget:        OverBudget(p),
		CompletedPhases:   CompletedPhases(phases),
		TotalPhases:       len(phases),
		CostsByCategory:   CostsByCategory(costs),
		TotalCosts:        TotalCosts(costs),
	}

	if w, ok := DurationWeeks(p); ok {
		m.DurationWeeks = &w
	}
	if d, ok := DaysRemaining(p, now); ok {
		m.DaysRemaining = &d
	}
	if ph, ok := CurrentPhase(phases); ok {
		m.CurrentPhase = ph
	}
	return m
}
