package request

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/renovation-marketplace/internal/audit"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/project"
	domain "github.com/BruksfildServices01/renovation-marketplace/internal/domain/request"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
	"github.com/BruksfildServices01/renovation-marketplace/internal/realtime"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	ProID       string
	Title       string
	Description string
	Budget      float64
	Address     *string
	Message     *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	rt    realtime.Publisher
}

func NewCreateRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
	rt realtime.Publisher,
) *CreateRequest {
	return &CreateRequest{repo: repo, audit: audit, rt: rt}
}

// Execute creates the client's project and a pending request to the chosen
// professional in one transaction.
func (uc *CreateRequest) Execute(
	ctx context.Context,
	who *identity.Identity,
	in CreateInput,
) (*models.Project, *models.ProjectRequest, error) {

	who, err := identity.Require(who)
	if err != nil {
		return nil, nil, err
	}

	client, err := uc.repo.GetClientProfile(ctx, who.UserID)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, nil, httperr.ErrBusiness("not_client")
	}

	// --------------------------------------------------
	// Target professional
	// --------------------------------------------------
	pro, err := uc.repo.GetProProfile(ctx, in.ProID)
	if err != nil {
		return nil, nil, err
	}
	if pro == nil || !pro.OnboardingComplete {
		return nil, nil, httperr.ErrBusiness("pro_not_found")
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, nil, httperr.ErrBusiness("title_required")
	}
	if err := project.ValidateMoney(in.Budget); err != nil {
		return nil, nil, err
	}

	p := &models.Project{
		ClientID:    who.UserID,
		Title:       title,
		Description: in.Description,
		Status:      string(project.StatusPlanned),
		Budget:      in.Budget,
		Address:     in.Address,
	}
	req := &models.ProjectRequest{
		ClientID: who.UserID,
		ProID:    pro.UserID,
		Status:   string(domain.InitialStatus()),
		Message:  in.Message,
	}

	if err := uc.repo.CreateWithProject(ctx, p, req); err != nil {
		return nil, nil, err
	}

	uc.rt.PublishRow(ctx, realtime.TableProjects, realtime.OpInsert, p.ID, p)
	uc.rt.PublishRow(ctx, realtime.TableRequests, realtime.OpInsert, req.ID, req)

	uc.audit.Dispatch(audit.Event{
		UserID:   who.UserID,
		Action:   "request_created",
		Entity:   "project_request",
		EntityID: req.ID,
		Metadata: map[string]string{"project_id": p.ID, "pro_id": pro.UserID},
	})

	return p, req, nil
}
