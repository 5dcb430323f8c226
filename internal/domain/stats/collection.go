// Package stats derives dashboard figures from snapshots of project rows.
// Every function is pure: callers pass the rows and, when dates matter, the
// current instant.
package stats

import (
	"math"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

type Summary struct {
	TotalBudget     float64 `json:"total_budget"`
	TotalSpent      float64 `json:"total_spent"`
	ActiveCount     int     `json:"active_count"`
	CompletedCount  int     `json:"completed_count"`
	AverageProgress int     `json:"average_progress"`
	ProjectCount    int     `json:"project_count"`
}

func TotalBudget(projects []models.Project) float64 {
	var total float64
	for _, p := range projects {
		total += p.Budget
	}
	return total
}

func TotalSpent(projects []models.Project) float64 {
	var total float64
	for _, p := range projects {
		total += p.Spent
	}
	return total
}

func ActiveCount(projects []models.Project) int {
	return countStatus(projects, project.StatusInProgress)
}

func CompletedCount(projects []models.Project) int {
	return countStatus(projects, project.StatusDone)
}

// AverageProgress is the rounded mean progress, 0 for no projects.
func AverageProgress(projects []models.Project) int {
	if len(projects) == 0 {
		return 0
	}

	var sum int
	for _, p := range projects {
		sum += p.Progress
	}
	return int(math.Round(float64(sum) / float64(len(projects))))
}

func Summarize(projects []models.Project) Summary {
	return Summary{
		TotalBudget:     TotalBudget(projects),
		TotalSpent:      TotalSpent(projects),
		ActiveCount:     ActiveCount(projects),
		CompletedCount:  CompletedCount(projects),
		AverageProgress: AverageProgress(projects),
		ProjectCount:    len(projects),
	}
}

func countStatus(projects []models.Project, status project.Status) int {
	n := 0
	for _, p := range projects {
		if project.Status(p.Status) == status {
			n++
		}
	}
	return n
}
