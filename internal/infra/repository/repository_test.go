package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/renovation-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/request"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

func TestTransition_AcceptAssignsProject(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRequestGormRepository(gdb)
	ctx := context.Background()

	p := &models.Project{ClientID: "client-1", Title: "Kitchen", Status: "planned"}
	req := &models.ProjectRequest{ClientID: "client-1", ProID: "pro-1", Status: "pending"}
	require.NoError(t, repo.CreateWithProject(ctx, p, req))
	assert.Equal(t, p.ID, req.ProjectID)

	got, err := repo.Transition(ctx, req, request.StatusAccepted)
	require.NoError(t, err)
	require.NotNil(t, got.ProID)
	assert.Equal(t, "pro-1", *got.ProID)
	assert.Equal(t, "in_progress", got.Status)

	_, err = repo.Transition(ctx, req, request.StatusAccepted)
	assert.True(t, httperr.IsBusiness(err, "request_not_pending"))
}

func TestTransition_ReloadsRequestRow(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRequestGormRepository(gdb)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)
	p := &models.Project{ClientID: "client-1", Title: "Roof", Status: "planned"}
	req := &models.ProjectRequest{ClientID: "client-1", ProID: "pro-1", Status: "pending", UpdatedAt: stale}
	require.NoError(t, repo.CreateWithProject(ctx, p, req))

	_, err := repo.Transition(ctx, req, request.StatusDeclined)
	require.NoError(t, err)

	assert.Equal(t, "declined", req.Status)
	assert.True(t, req.UpdatedAt.After(stale))

	stored, err := repo.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, stored.UpdatedAt.Equal(req.UpdatedAt))
}

func TestSingleRowLookups_MissingIsNil(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	projects := NewProjectGormRepository(gdb)
	requests := NewRequestGormRepository(gdb)

	p, err := projects.GetProject(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, p)

	ph, err := projects.GetPhase(ctx, "missing", "missing")
	require.NoError(t, err)
	assert.Nil(t, ph)

	r, err := requests.GetRequest(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestTransition_RollsBackWhenProjectTaken(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewRequestGormRepository(gdb)
	ctx := context.Background()

	other := "pro-2"
	p := &models.Project{ClientID: "client-1", Title: "Deck", Status: "in_progress", ProID: &other}
	req := &models.ProjectRequest{ClientID: "client-1", ProID: "pro-1", Status: "pending"}
	require.NoError(t, repo.CreateWithProject(ctx, p, req))

	_, err := repo.Transition(ctx, req, request.StatusAccepted)
	assert.True(t, httperr.IsBusiness(err, "project_already_assigned"))

	stored, err := repo.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
}

func TestListOnboardedPros_FiltersSpecialty(t *testing.T) {
	gdb := dbtest.New(t)
	repo := NewProfileGormRepository(gdb)
	ctx := context.Background()

	pros := []models.ProProfile{
		{UserID: "u1", FullName: "Ana", Specialties: []string{"plumber", "electrician"}, OnboardingComplete: true},
		{UserID: "u2", FullName: "Ben", Specialties: []string{"architect"}, OnboardingComplete: true},
		{UserID: "u3", FullName: "Cy", Specialties: []string{"plumber"}},
	}
	for i := range pros {
		require.NoError(t, gdb.Omit("Portfolio").Create(&pros[i]).Error)
	}
	require.NoError(t, gdb.Create(&models.ProPortfolioItem{ProID: "u1", URL: "https://cdn/x.webp"}).Error)

	all, err := repo.ListOnboardedPros(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	plumbers, err := repo.ListOnboardedPros(ctx, "plumber")
	require.NoError(t, err)
	require.Len(t, plumbers, 1)
	assert.Equal(t, "u1", plumbers[0].UserID)
	assert.Len(t, plumbers[0].Portfolio, 1)
}

func TestFindProfile_MissingIsNil(t *testing.T) {
	repo := NewProfileGormRepository(dbtest.New(t))

	c, err := repo.FindClientProfile(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, c)
}
