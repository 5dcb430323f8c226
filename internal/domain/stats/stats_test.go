package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSummarize_ClientScenario(t *testing.T) {
	projects := []models.Project{
		{Budget: 35000, Spent: 22750, Status: "in_progress", Progress: 65},
		{Budget: 18000, Spent: 0, Status: "planned", Progress: 0},
	}

	s := Summarize(projects)

	assert.Equal(t, 53000.0, s.TotalBudget)
	assert.Equal(t, 22750.0, s.TotalSpent)
	assert.Equal(t, 1, s.ActiveCount)
	assert.Equal(t, 33, s.AverageProgress)
	assert.Equal(t, 0, s.CompletedCount)
	assert.Equal(t, 2, s.ProjectCount)
}

func TestCollection_Empty(t *testing.T) {
	assert.Equal(t, 0, AverageProgress(nil))
	assert.Equal(t, 0, ActiveCount(nil))
	assert.Equal(t, 0.0, TotalBudget(nil))
	assert.Equal(t, 0.0, TotalSpent([]models.Project{}))
}

func TestBudgetUtilization(t *testing.T) {
	cases := []struct {
		name   string
		budget float64
		spent  float64
		want   int
	}{
		{"no budget", 0, 500, 0},
		{"partial", 35000, 22750, 65},
		{"rounds half up", 200, 1, 1},
		{"over budget", 1000, 1500, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := models.Project{Budget: tc.budget, Spent: tc.spent}
			assert.Equal(t, tc.want, BudgetUtilization(p))
			assert.Equal(t, BudgetUtilization(p), BudgetUtilization(p))
		})
	}

	assert.True(t, OverBudget(models.Project{Budget: 1000, Spent: 1500}))
	assert.False(t, OverBudget(models.Project{Budget: 1000, Spent: 1000}))
}

func TestDurationWeeks(t *testing.T) {
	p := models.Project{StartDate: date(2024, 3, 1), EstimatedEndDate: date(2024, 3, 16)}
	w, ok := DurationWeeks(p)
	require.True(t, ok)
	assert.Equal(t, 3, w)

	_, ok = DurationWeeks(models.Project{StartDate: date(2024, 3, 1)})
	assert.False(t, ok)
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	d, ok := DaysRemaining(models.Project{EstimatedEndDate: date(2024, 3, 15)}, now)
	require.True(t, ok)
	assert.Equal(t, 5, d)

	d, ok = DaysRemaining(models.Project{EstimatedEndDate: date(2024, 3, 1)}, now)
	require.True(t, ok)
	assert.Equal(t, -9, d)

	_, ok = DaysRemaining(models.Project{}, now)
	assert.False(t, ok)
}

func TestCostsByCategory(t *testing.T) {
	costs := []models.ProjectCost{
		{Category: "materials", Amount: 1200},
		{Category: "materials", Amount: 300},
		{Category: "labor", Amount: 2000},
	}

	got := CostsByCategory(costs)

	assert.Len(t, got, 4)
	assert.Equal(t, 1500.0, got[project.CostMaterials])
	assert.Equal(t, 2000.0, got[project.CostLabor])
	assert.Equal(t, 0.0, got[project.CostPermits])
	assert.Equal(t, 0.0, got[project.CostOther])

	var sum float64
	for _, v := range got {
		sum += v
	}
	assert.Equal(t, TotalCosts(costs), sum)
}

func TestPhases(t *testing.T) {
	phases := []models.ProjectPhase{
		{ID: "c", Name: "Finish", Status: "pending", SortOrder: 3},
		{ID: "a", Name: "Demo", Status: "done", SortOrder: 1},
		{ID: "b", Name: "Framing", Status: "in_progress", SortOrder: 2},
		{ID: "d", Name: "Paint", Status: "in_progress", SortOrder: 4},
	}

	sorted := SortPhases(phases)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	assert.Equal(t, "c", phases[0].ID)

	cur, ok := CurrentPhase(phases)
	require.True(t, ok)
	assert.Equal(t, "b", cur.ID)

	assert.Equal(t, 1, CompletedPhases(phases))

	_, ok = CurrentPhase(nil)
	assert.False(t, ok)
}

func TestProjectMetrics(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	p := models.Project{Budget: 100, Spent: 50, StartDate: date(2024, 3, 1)}

	m := ProjectMetrics(p, nil, nil, now)

	assert.Equal(t, 50, m.BudgetUtilization)
	assert.Nil(t, m.DurationWeeks)
	assert.Nil(t, m.DaysRemaining)
	assert.Nil(t, m.CurrentPhase)
	assert.Len(t, m.CostsByCategory, 4)
}
