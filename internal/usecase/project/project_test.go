package project

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/storage"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

var (
	owner    = &identity.Identity{UserID: "client-1"}
	assigned = &identity.Identity{UserID: "pro-1"}
	stranger = &identity.Identity{UserID: "pro-2"}
)

type fixture struct {
	db   *gorm.DB
	repo *repository.ProjectGormRepository
	rt   *realtime.Broadcaster
	p    *models.Project
}

func setup(t *testing.T) fixture {
	t.Helper()
	gdb := dbtest.New(t)

	require.NoError(t, gdb.Create(&models.ClientProfile{UserID: "client-1", FullName: "Claire"}).Error)
	for _, id := range []string{"pro-1", "pro-2"} {
		require.NoError(t, gdb.Omit("Portfolio").Create(&models.ProProfile{UserID: id, FullName: id, OnboardingComplete: true}).Error)
	}

	pro := "pro-1"
	p := &models.Project{ClientID: "client-1", ProID: &pro, Title: "Kitchen", Status: "in_progress", Budget: 35000, Spent: 22750, Progress: 65}
	require.NoError(t, gdb.Create(p).Error)

	return fixture{
		db:   gdb,
		repo: repository.NewProjectGormRepository(gdb),
		rt:   realtime.NewBroadcaster(realtime.NewHub(zap.NewNop()), nil, zap.NewNop()),
		p:    p,
	}
}

func TestListProjects_ByRole(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	resolver := identity.NewResolver(repository.NewProfileGormRepository(f.db))
	uc := NewListProjects(f.repo, resolver)

	require.NoError(t, f.db.Create(&models.Project{ClientID: "client-1", Title: "Deck", Status: "planned", Budget: 18000}).Error)

	mine, err := uc.Execute(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := uc.Execute(ctx, assigned)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "Kitchen", theirs[0].Title)

	_, err = uc.Execute(ctx, nil)
	assert.ErrorIs(t, err, identity.ErrNotSignedIn)
}

func TestCreateProject(t *testing.T) {
	f := setup(t)
	uc := NewCreateProject(f.repo, nil, f.rt)
	ctx := context.Background()

	p, err := uc.Execute(ctx, owner, CreateInput{Title: " Basement ", Budget: 5000})
	require.NoError(t, err)
	assert.Equal(t, "Basement", p.Title)
	assert.Equal(t, "planned", p.Status)
	assert.Nil(t, p.ProID)

	_, err = uc.Execute(ctx, assigned, CreateInput{Title: "x"})
	assert.True(t, httperr.IsBusiness(err, "not_client"))

	_, err = uc.Execute(ctx, owner, CreateInput{Title: "x", Budget: -1})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))
}

func TestGetDetails_MetricsAndAccess(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	phases := NewManagePhases(f.repo, f.rt)
	costs := NewAddCost(f.repo, f.rt)

	name := func(s string) *string { return &s }
	status := func(s string) *string { return &s }

	_, err := phases.Add(ctx, assigned, f.p.ID, PhaseInput{Name: name("Demolition"), Status: status("done")})
	require.NoError(t, err)
	_, err = phases.Add(ctx, assigned, f.p.ID, PhaseInput{Name: name("Plumbing"), Status: status("in_progress")})
	require.NoError(t, err)

	_, err = costs.Execute(ctx, owner, f.p.ID, CostInput{Label: "Tiles", Amount: 1200, Category: "materials"})
	require.NoError(t, err)

	d, err := NewGetDetails(f.repo).Execute(ctx, owner, f.p.ID, time.Now())
	require.NoError(t, err)

	assert.Len(t, d.Phases, 2)
	assert.Equal(t, "Demolition", d.Phases[0].Name)
	assert.Equal(t, 1, d.Phases[1].SortOrder)
	assert.Equal(t, 65, d.Metrics.BudgetUtilization)
	assert.Equal(t, 1, d.Metrics.CompletedPhases)
	require.NotNil(t, d.Metrics.CurrentPhase)
	assert.Equal(t, "Plumbing", d.Metrics.CurrentPhase.Name)
	assert.Equal(t, 1200.0, d.Metrics.TotalCosts)
	require.NotNil(t, d.Pro)
	assert.Equal(t, "pro-1", d.Pro.UserID)

	_, err = NewGetDetails(f.repo).Execute(ctx, stranger, f.p.ID, time.Now())
	assert.True(t, httperr.IsBusiness(err, "project_not_found"))
}

// emptyRepo finds nothing; only the lookups used below are implemented.
type emptyRepo struct {
	domain.Repository
}

func (emptyRepo) GetProject(context.Context, string) (*models.Project, error) { return nil, nil }

func TestGetDetails_MissingRowIsNotFound(t *testing.T) {
	_, err := NewGetDetails(emptyRepo{}).Execute(context.Background(), owner, "gone", time.Now())
	assert.True(t, httperr.IsBusiness(err, "project_not_found"))
}

func TestUpdateProgress_OnlyAssignedPro(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uc := NewUpdateProgress(f.repo, nil, f.rt)

	progress := 80
	done := "done"
	p, err := uc.Execute(ctx, assigned, f.p.ID, ProgressInput{Progress: &progress, Status: &done})
	require.NoError(t, err)
	assert.Equal(t, 80, p.Progress)
	assert.Equal(t, "done", p.Status)

	_, err = uc.Execute(ctx, owner, f.p.ID, ProgressInput{Progress: &progress})
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	bad := 120
	_, err = uc.Execute(ctx, assigned, f.p.ID, ProgressInput{Progress: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_progress"))

	weird := "archived"
	_, err = uc.Execute(ctx, assigned, f.p.ID, ProgressInput{Status: &weird})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdatePhase(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uc := NewManagePhases(f.repo, f.rt)

	name := "Framing"
	ph, err := uc.Add(ctx, assigned, f.p.ID, PhaseInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "pending", ph.Status)

	s := "in_progress"
	ph, err = uc.Update(ctx, assigned, f.p.ID, ph.ID, PhaseInput{Status: &s})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", ph.Status)

	_, err = uc.Update(ctx, assigned, f.p.ID, "missing", PhaseInput{Status: &s})
	assert.True(t, httperr.IsBusiness(err, "phase_not_found"))
}

func TestAddCost_Validation(t *testing.T) {
	f := setup(t)
	uc := NewAddCost(f.repo, f.rt)
	ctx := context.Background()

	_, err := uc.Execute(ctx, owner, f.p.ID, CostInput{Label: "Permit", Amount: 0, Category: "permits"})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))

	_, err = uc.Execute(ctx, owner, f.p.ID, CostInput{Label: "Permit", Amount: 10, Category: "bribes"})
	assert.True(t, httperr.IsBusiness(err, "invalid_category"))
}

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestAddPhoto(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	store := storage.NewMemory("https://cdn.test")
	uc := NewAddPhoto(f.repo, store, "project-photos", f.rt, zap.NewNop())

	photo, err := uc.Execute(ctx, owner, f.p.ID, PhotoInput{Data: pngData(t)})
	require.NoError(t, err)
	assert.Contains(t, photo.URL, "https://cdn.test/project-photos/"+f.p.ID+"/")
	assert.Contains(t, photo.URL, ".png")
	assert.Equal(t, 1, store.Len())

	_, err = uc.Execute(ctx, owner, f.p.ID, PhotoInput{Data: []byte("text")})
	assert.True(t, httperr.IsBusiness(err, "invalid_image"))
}

type failingStore struct{ storage.Storage }

func (failingStore) Put(context.Context, storage.Object) (string, error) {
	return "", errors.New("bucket offline")
}

func TestAddPhoto_StorageFailureIsUpstream(t *testing.T) {
	f := setup(t)
	uc := NewAddPhoto(f.repo, failingStore{}, "project-photos", f.rt, zap.NewNop())

	_, err := uc.Execute(context.Background(), owner, f.p.ID, PhotoInput{Data: pngData(t)})
	var up *httperr.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "storage", up.Service)
}
