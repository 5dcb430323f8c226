package project

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

type CreateInput struct {
	Title            string
	Description      string
	Budget           float64
	Address          *string
	StartDate        *time.Time
	EstimatedEndDate *time.Time
}

type CreateProject struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	rt    realtime.Publisher
}

func NewCreateProject(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rt realtime.Publisher,
) *CreateProject {
	return &CreateProject{repo: repo, audit: audit, rt: rt}
}

func (uc *CreateProject) Execute(
	ctx context.Context,
	who *identity.Identity,
	in CreateInput,
) (*models.Project, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, err
	}

	client, err := uc.repo.GetClientProfile(ctx, who.UserID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, httperr.ErrBusiness("not_client")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("title_required")
	}
	if err := domain.ValidateMoney(in.Budget); err != nil {
		return nil, err
	}
	if in.StartDate != nil && in.EstimatedEndDate != nil && in.EstimatedEndDate.Before(*in.StartDate) {
		return nil, httperr.ErrBusiness("invalid_dates")
	}

	p := &models.Project{
		ClientID:         who.UserID,
		Title:            title,
		Description:      in.Description,
		Status:           string(domain.StatusPlanned),
		Budget:           in.Budget,
		Address:          in.Address,
		StartDate:        in.StartDate,
		EstimatedEndDate: in.EstimatedEndDate,
	}

	if err := uc.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TableProjects, realtime.OpInsert, p.ID, p)
	uc.audit.Dispatch(audit.Event{
		UserID:   who.UserID,
		Action:   "project_created",
		Entity:   "project",
		EntityID: p.ID,
	})

	return p, nil
}
