package request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/renovation-marketplace/internal/db/dbtest"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

type fixture struct {
	db      *gorm.DB
	create  *CreateRequest
	respond *RespondRequest
	pending *ListPending
	hub     *realtime.Hub
}

func setup(t *testing.T) fixture {
	t.Helper()
	gdb := dbtest.New(t)

	require.NoError(t, gdb.Create(&models.ClientProfile{UserID: "client-1", FullName: "Claire"}).Error)
	for _, id := range []string{"pro-1", "pro-2"} {
		require.NoError(t, gdb.Omit("Portfolio").Create(&models.ProProfile{
			UserID:             id,
			FullName:           id,
			Specialties:        []string{"plumber"},
			OnboardingComplete: true,
		}).Error)
	}

	repo := repository.NewRequestGormRepository(gdb)
	hub := realtime.NewHub(zap.NewNop())
	rt := realtime.NewBroadcaster(hub, nil, zap.NewNop())

	return fixture{
		db:      gdb,
		create:  NewCreateRequest(repo, nil, rt),
		respond: NewRespondRequest(repo, nil, rt),
		pending: NewListPending(repo),
		hub:     hub,
	}
}

var (
	client = &identity.Identity{UserID: "client-1"}
	pro1   = &identity.Identity{UserID: "pro-1"}
	pro2   = &identity.Identity{UserID: "pro-2"}
)

func (f fixture) newRequest(t *testing.T, title string) (*models.Project, *models.ProjectRequest) {
	t.Helper()
	p, r, err := f.create.Execute(context.Background(), client, CreateInput{ProID: "pro-1", Title: title, Budget: 1000})
	require.NoError(t, err)
	return p, r
}

func TestCreate_ProjectStartsUnassigned(t *testing.T) {
	f := setup(t)

	p, r := f.newRequest(t, "Bathroom")

	assert.Equal(t, "planned", p.Status)
	assert.Nil(t, p.ProID)
	assert.Equal(t, "pending", r.Status)
	assert.Equal(t, p.ID, r.ProjectID)
}

func TestCreate_Rejections(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, _, err := f.create.Execute(ctx, nil, CreateInput{ProID: "pro-1", Title: "x"})
	assert.ErrorIs(t, err, identity.ErrNotSignedIn)

	_, _, err = f.create.Execute(ctx, pro1, CreateInput{ProID: "pro-2", Title: "x"})
	assert.True(t, httperr.IsBusiness(err, "not_client"))

	_, _, err = f.create.Execute(ctx, client, CreateInput{ProID: "ghost", Title: "x"})
	assert.True(t, httperr.IsBusiness(err, "pro_not_found"))

	_, _, err = f.create.Execute(ctx, client, CreateInput{ProID: "pro-1", Title: "  "})
	assert.True(t, httperr.IsBusiness(err, "title_required"))
}

func TestRespond_AcceptSecondOfThree(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, r1 := f.newRequest(t, "One")
	p2, r2 := f.newRequest(t, "Two")
	_, r3 := f.newRequest(t, "Three")

	sub := f.hub.Subscribe(realtime.Filter{Table: realtime.TableProjects, Column: "id", Value: p2.ID})

	res, err := f.respond.Execute(ctx, pro1, r2.ID, p2.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "accepted", res.Request.Status)

	list, err := f.pending.Execute(ctx, pro1)
	require.NoError(t, err)
	ids := []string{}
	for _, p := range list {
		ids = append(ids, p.ID)
		assert.NotNil(t, p.Project)
		assert.Equal(t, "Claire", p.Client.FullName)
	}
	assert.ElementsMatch(t, []string{r1.ID, r3.ID}, ids)

	var stored models.Project
	require.NoError(t, f.db.Where("id = ?", p2.ID).First(&stored).Error)
	assert.Equal(t, "in_progress", stored.Status)
	require.NotNil(t, stored.ProID)
	assert.Equal(t, "pro-1", *stored.ProID)

	assert.Len(t, sub.C(), 1)
}

func TestRespond_DeclineLeavesProjectUnassigned(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, r := f.newRequest(t, "Roof")

	res, err := f.respond.Execute(ctx, pro1, r.ID, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "declined", res.Request.Status)
	assert.Nil(t, res.Project.ProID)
	assert.Equal(t, "planned", res.Project.Status)

	_, err = f.respond.Execute(ctx, pro1, r.ID, p.ID, true)
	assert.True(t, httperr.IsBusiness(err, "request_not_pending"))
}

func TestRespond_Guards(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, r := f.newRequest(t, "Garage")

	_, err := f.respond.Execute(ctx, nil, r.ID, p.ID, true)
	assert.ErrorIs(t, err, identity.ErrNotSignedIn)

	_, err = f.respond.Execute(ctx, client, r.ID, p.ID, true)
	assert.True(t, httperr.IsBusiness(err, "not_professional"))

	_, err = f.respond.Execute(ctx, pro2, r.ID, p.ID, true)
	assert.True(t, httperr.IsBusiness(err, "forbidden"))

	_, err = f.respond.Execute(ctx, pro1, "missing", p.ID, true)
	assert.True(t, httperr.IsBusiness(err, "request_not_found"))

	_, err = f.respond.Execute(ctx, pro1, r.ID, "other-project", true)
	assert.True(t, httperr.IsBusiness(err, "project_mismatch"))
}

func TestListPending_SkipsOrphans(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	p, _ := f.newRequest(t, "Orphan")
	f.newRequest(t, "Kept")
	require.NoError(t, f.db.Where("id = ?", p.ID).Delete(&models.Project{}).Error)

	list, err := f.pending.Execute(ctx, pro1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kept", list[0].Project.Title)
}
