package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	ucRequest "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/request"
)

func setup(t *testing.T) *Dashboard {
	t.Helper()
	gdb := dbtest.New(t)

	require.NoError(t, gdb.Create(&models.ClientProfile{UserID: "client-1", FullName: "C"}).Error)
	require.NoError(t, gdb.Omit("Portfolio").Create(&models.ProProfile{
		UserID: "pro-1", FullName: "P", OnboardingComplete: true,
	}).Error)

	pro := "pro-1"
	projects := []models.Project{
		{ClientID: "client-1", ProID: &pro, Title: "Kitchen", Status: "in_progress", Budget: 25000, Spent: 12500, Progress: 45},
		{ClientID: "client-1", ProID: &pro, Title: "Bathroom", Status: "done", Budget: 8000, Spent: 7900, Progress: 100},
		{ClientID: "client-1", Title: "Garden", Status: "planned", Budget: 20000, Spent: 2350},
	}
	require.NoError(t, gdb.Create(&projects).Error)
	require.NoError(t, gdb.Create(&models.ProjectRequest{
		ProjectID: projects[2].ID, ClientID: "client-1", ProID: "pro-1", Status: "pending",
	}).Error)

	resolver := identity.NewResolver(repository.NewProfileGormRepository(gdb))
	return New(
		repository.NewProjectGormRepository(gdb),
		ucRequest.NewListPending(repository.NewRequestGormRepository(gdb)),
		resolver,
	)
}

func TestClientDashboard(t *testing.T) {
	d := setup(t)

	out, err := d.Client(context.Background(), &identity.Identity{UserID: "client-1"})
	require.NoError(t, err)

	assert.Len(t, out.Projects, 3)
	assert.Equal(t, 53000.0, out.Summary.TotalBudget)
	assert.Equal(t, 22750.0, out.Summary.TotalSpent)
	assert.Equal(t, 1, out.Summary.ActiveCount)
}

func TestProDashboard(t *testing.T) {
	d := setup(t)

	out, err := d.Pro(context.Background(), &identity.Identity{UserID: "pro-1"})
	require.NoError(t, err)

	require.Len(t, out.Pending, 1)
	assert.Equal(t, "Garden", out.Pending[0].Project.Title)
	assert.Equal(t, 1, out.ActiveCount)
	assert.Equal(t, 1, out.CompletedCount)
	assert.Equal(t, 33000.0, out.TotalRevenue)
	assert.Equal(t, 73, out.AverageProgress)
}

func TestDashboard_RoleMismatch(t *testing.T) {
	d := setup(t)
	ctx := context.Background()

	_, err := d.Pro(ctx, &identity.Identity{UserID: "client-1"})
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "not_professional", code)

	_, err = d.Client(ctx, &identity.Identity{UserID: "pro-1"})
	code, _ = httperr.BusinessCode(err)
	assert.Equal(t, "not_client", code)

	_, err = d.Landing(ctx, nil)
	assert.ErrorIs(t, err, identity.ErrNotSignedIn)
}

func TestLanding(t *testing.T) {
	d := setup(t)

	l, err := d.Landing(context.Background(), &identity.Identity{UserID: "pro-1"})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/pro", l.Redirect)
}
