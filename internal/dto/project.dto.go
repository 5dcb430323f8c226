package dto

import (
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/stats"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

// ProjectListItemDTO is a project card: the row plus the budget gauge.
type ProjectListItemDTO struct {
	models.Project
	BudgetUtilization int  `json:"budget_utilization"`
	OverBudget        bool `json:"over_budget"`
}

func ProjectListItems(projects []models.Project) []ProjectListItemDTO {
	out := make([]ProjectListItemDTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectListItemDTO{
			Project:           p,
			BudgetUtilization: stats.BudgetUtilization(p),
			OverBudget:        stats.OverBudget(p),
		})
	}
	return out
}
